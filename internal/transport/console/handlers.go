package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tokens-backend/internal/apperror"
	"github.com/rocketscienceinc/tokens-backend/internal/entity"
	"github.com/rocketscienceinc/tokens-backend/internal/usecase"
)

type statePayload struct {
	Game     *entity.GameState `json:"game"`
	Version  uint64            `json:"version"`
	Controls usecase.Controls  `json:"controls"`
}

func (that *Server) handleTake(ctx context.Context) error {
	_, err := that.gameUseCase.TakeToken(ctx)
	return that.handleGameError(commandTake, err)
}

func (that *Server) handleSwitchToBot(ctx context.Context) error {
	_, err := that.gameUseCase.SwitchToBot(ctx)
	return that.handleGameError(commandBot, err)
}

func (that *Server) handlePlayAgain(ctx context.Context) error {
	_, err := that.gameUseCase.Reset(ctx)
	return that.handleGameError(commandAgain, err)
}

func (that *Server) handleState(_ context.Context) error {
	state, version := that.gameUseCase.State()

	data, err := json.Marshal(statePayload{
		Game:     state,
		Version:  version,
		Controls: usecase.ControlsFor(state),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	that.writeLine(string(data))

	return nil
}

func (that *Server) handleHelp(_ context.Context) error {
	that.writeLine(strings.Join([]string{
		"  take   remove one token",
		"  bot    let the bot play",
		"  again  start a new game once this one is over",
		"  state  print the game as JSON",
		"  quit   leave",
	}, "\n"))

	return nil
}

func (that *Server) handleQuit(_ context.Context) error {
	return errQuit
}

// handleGameError - rule violations are shown to the player, anything else ends the session.
func (that *Server) handleGameError(command string, err error) error {
	log := that.logger.With("method", "handleGameError", "command", command)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrSwitchLocked):
		log.Debug("command refused", "reason", err)
		that.writeLine("! " + err.Error())
		return nil
	default:
		log.Error("command failed", "error", err)
		return fmt.Errorf("failed to run %s: %w", command, err)
	}
}
