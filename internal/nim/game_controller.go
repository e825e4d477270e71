// Package nim holds the rules of the token-removal game: a pure transition
// function over entity.GameState and the bot's strategy.
package nim

import (
	"github.com/rocketscienceinc/tokens-backend/internal/entity"
)

// Transition returns the state that follows state once action is applied.
// The input is never modified. A finished game, or a request that changes
// nothing, returns state itself so callers can detect a no-op by identity.
func Transition(state *entity.GameState, action entity.Action) *entity.GameState {
	if state.Winner.IsSet() {
		return state
	}

	switch act := action.(type) {
	case entity.SetHumanTurn:
		return setPlayerToHuman(state, act.IsHuman)
	case entity.TakeToken:
		return takeToken(state)
	default:
		return state.Clone()
	}
}

// OptimalMove - number of tokens the bot takes so that a multiple of
// MaxTaken+1 is left. When the pool is already such a multiple the bot is
// losing and takes a single token.
func OptimalMove(tokensLeft int) int {
	if move := tokensLeft % (entity.MaxTaken + 1); move != 0 {
		return move
	}
	return 1
}

// setPlayerToHuman - makes playerIsHuman the active side and recomputes its allowance.
func setPlayerToHuman(state *entity.GameState, playerIsHuman bool) *entity.GameState {
	if state.PlayerIsHuman == playerIsHuman {
		return state
	}

	next := state.Clone()
	next.PlayerIsHuman = playerIsHuman

	if playerIsHuman {
		next.BotMove = 0
		next.CanTake = min(entity.MaxTaken, state.TokensLeft)
		return next
	}

	// the bot's allowance is exactly its move, so its turn ends after the last planned token
	next.BotMove = OptimalMove(state.TokensLeft)
	next.CanTake = next.BotMove

	return next
}

// takeToken - removes one token and passes the turn or ends the game once the allowance is spent.
func takeToken(state *entity.GameState) *entity.GameState {
	next := state.Clone()
	next.TokensLeft--
	next.CanTake--

	if next.CanTake != 0 {
		return next
	}

	if next.TokensLeft != 0 {
		return setPlayerToHuman(next, !next.PlayerIsHuman)
	}

	next.Winner = entity.WinnerFor(next.PlayerIsHuman)

	return next
}
