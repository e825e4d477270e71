package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tokens-backend/internal/config"
	"github.com/rocketscienceinc/tokens-backend/internal/service"
	"github.com/rocketscienceinc/tokens-backend/internal/transport/console"
	"github.com/rocketscienceinc/tokens-backend/internal/usecase"
)

// RunApp - runs the game on the terminal until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game to in and out and plays until quit, end of input or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService := service.NewBotService(logger, conf.Bot.Delay)
	defer botService.Close()

	gameManager := usecase.NewGameManager(logger, botService)
	consoleServer := console.New(logger, gameManager, in, out, conf.Console.Prompt)

	log.Info("Starting console", "botDelay", conf.Bot.Delay)

	if err := consoleServer.Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}
