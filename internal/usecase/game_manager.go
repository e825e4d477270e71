package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tokens-backend/internal/apperror"
	"github.com/rocketscienceinc/tokens-backend/internal/entity"
	"github.com/rocketscienceinc/tokens-backend/internal/nim"
	"github.com/rocketscienceinc/tokens-backend/internal/service"
)

type botScheduler interface {
	Schedule(ctx context.Context, version uint64, move service.MoveFunc)
	Cancel()
}

// GameManager owns the current game and replaces it on every transition.
type GameManager struct {
	logger *slog.Logger
	bot    botScheduler

	mu          sync.Mutex
	state       *entity.GameState
	version     uint64
	subscribers []func(*entity.GameState)
}

func NewGameManager(logger *slog.Logger, bot botScheduler) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
		state:  entity.NewGame(),
	}
}

// State - returns the current state and its version.
func (that *GameManager) State() (*entity.GameState, uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state, that.version
}

// Subscribe - registers fn to be called with every new state.
func (that *GameManager) Subscribe(fn func(*entity.GameState)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.subscribers = append(that.subscribers, fn)
}

// Dispatch - applies action to the current state. The version only moves when
// the engine returns a different state.
func (that *GameManager) Dispatch(ctx context.Context, action entity.Action) (*entity.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to dispatch: %w", err)
	}

	that.mu.Lock()
	next, changed := that.applyLocked(ctx, nim.Transition(that.state, action))
	subscribers := that.subscribers
	that.mu.Unlock()

	if changed {
		that.notify(subscribers, next)
	}

	return next, nil
}

// TakeToken - the human takes one token.
func (that *GameManager) TakeToken(ctx context.Context) (*entity.GameState, error) {
	state, _ := that.State()

	switch {
	case state.IsFinished():
		return state, apperror.ErrGameFinished
	case !state.PlayerIsHuman:
		return state, apperror.ErrNotYourTurn
	}

	return that.Dispatch(ctx, entity.TakeToken{})
}

// SwitchToBot - the human hands the turn over to the bot.
func (that *GameManager) SwitchToBot(ctx context.Context) (*entity.GameState, error) {
	state, _ := that.State()

	if state.IsFinished() {
		return state, apperror.ErrGameFinished
	}

	if ControlsFor(state).SwitchLocked {
		return state, apperror.ErrSwitchLocked
	}

	return that.Dispatch(ctx, entity.SetHumanTurn{IsHuman: false})
}

// PlayBotMove - the bot's deferred token. It is ignored unless version is still current.
func (that *GameManager) PlayBotMove(ctx context.Context, version uint64) error {
	log := that.logger.With("method", "PlayBotMove", "version", version)

	that.mu.Lock()
	if version != that.version || !that.state.IsBotTurn() {
		current := that.version
		that.mu.Unlock()

		return fmt.Errorf("%w: version %d, current %d", apperror.ErrStaleMove, version, current)
	}

	next, changed := that.applyLocked(ctx, nim.Transition(that.state, entity.TakeToken{}))
	subscribers := that.subscribers
	that.mu.Unlock()

	log.Info("bot took a token", "tokensLeft", next.TokensLeft)

	if changed {
		that.notify(subscribers, next)
	}

	return nil
}

// Reset - starts a new game once the current one has a winner.
func (that *GameManager) Reset(ctx context.Context) (*entity.GameState, error) {
	that.mu.Lock()
	if !that.state.IsFinished() {
		state := that.state
		that.mu.Unlock()

		return state, apperror.ErrGameIsNotFinished
	}

	next, _ := that.applyLocked(ctx, entity.NewGame())
	subscribers := that.subscribers
	that.mu.Unlock()

	that.logger.Info("new game started")
	that.notify(subscribers, next)

	return next, nil
}

// Controls - which controls the current state enables.
func (that *GameManager) Controls() Controls {
	state, _ := that.State()

	return ControlsFor(state)
}

// applyLocked - installs next and keeps the bot schedule in step with it.
// The scheduler is driven under the lock so schedules are never reordered.
func (that *GameManager) applyLocked(ctx context.Context, next *entity.GameState) (*entity.GameState, bool) {
	if next == that.state {
		return next, false
	}

	that.state = next
	that.version++

	that.logger.Debug("state changed",
		"version", that.version,
		"tokensLeft", next.TokensLeft,
		"canTake", next.CanTake,
		"playerIsHuman", next.PlayerIsHuman,
	)

	switch {
	case next.IsFinished():
		that.bot.Cancel()
		that.logger.Info("game finished", "winner", next.Winner.String())
	case next.IsBotTurn():
		that.bot.Schedule(ctx, that.version, that.PlayBotMove)
	default:
		that.bot.Cancel()
	}

	return next, true
}

func (that *GameManager) notify(subscribers []func(*entity.GameState), state *entity.GameState) {
	for _, fn := range subscribers {
		fn(state)
	}
}
