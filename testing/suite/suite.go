package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tokens-backend/internal/service"
	"github.com/rocketscienceinc/tokens-backend/internal/usecase"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Bot     service.BotService
	Manager *usecase.GameManager
}

// New - wires a game manager to a real bot that waits botDelay between tokens.
func New(t *testing.T, botDelay time.Duration) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	bot := service.NewBotService(logger, botDelay)
	manager := usecase.NewGameManager(logger, bot)

	t.Cleanup(func() {
		bot.Close()
		cancel()
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Bot:     bot,
		Manager: manager,
	}
}

// WaitForHuman - blocks until the bot has handed the turn back or the game is over.
func (that *Suite) WaitForHuman() {
	that.Helper()

	deadline := time.Now().Add(maxWaitDuration)
	for time.Now().Before(deadline) {
		state, _ := that.Manager.State()
		if !state.IsBotTurn() {
			return
		}
		time.Sleep(time.Millisecond)
	}

	that.Fatalf("bot did not finish its turn within %s", maxWaitDuration)
}
