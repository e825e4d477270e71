package usecase

import "github.com/rocketscienceinc/tokens-backend/internal/entity"

// Controls tells the presentation layer what the player may do next.
type Controls struct {
	TakeEnabled      bool `json:"take_enabled"`
	SwitchLocked     bool `json:"switch_locked"`
	PlayAgainVisible bool `json:"play_again_visible"`
}

// ControlsFor derives the controls for state. The bot may take over before the
// first token is taken or while the human is part way through a turn.
func ControlsFor(state *entity.GameState) Controls {
	finished := state.IsFinished()

	switchLocked := state.TokensLeft < entity.StartingTotal &&
		(!state.PlayerIsHuman || state.CanTake == entity.MaxTaken || state.CanTake == state.TokensLeft)

	return Controls{
		TakeEnabled:      state.PlayerIsHuman && !finished,
		SwitchLocked:     switchLocked || finished,
		PlayAgainVisible: finished,
	}
}
