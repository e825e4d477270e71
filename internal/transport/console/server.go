// Package console is a line-oriented terminal front end for the game.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tokens-backend/internal/apperror"
	"github.com/rocketscienceinc/tokens-backend/internal/entity"
	"github.com/rocketscienceinc/tokens-backend/internal/usecase"
)

const (
	commandTake  = "take"
	commandBot   = "bot"
	commandAgain = "again"
	commandState = "state"
	commandHelp  = "help"
	commandQuit  = "quit"
)

var errQuit = errors.New("quit")

type gameUseCase interface {
	State() (*entity.GameState, uint64)
	Controls() usecase.Controls
	Subscribe(fn func(*entity.GameState))

	TakeToken(ctx context.Context) (*entity.GameState, error)
	SwitchToBot(ctx context.Context) (*entity.GameState, error)
	Reset(ctx context.Context) (*entity.GameState, error)
}

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	prompt      string

	in io.Reader

	outMutex sync.Mutex
	out      io.Writer

	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, gameUseCase gameUseCase, in io.Reader, out io.Writer, prompt string) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		prompt:      prompt,
		in:          in,
		out:         out,
		handlers:    make(map[string]func(context.Context) error),
	}

	server.handlers[commandTake] = server.handleTake
	server.handlers[commandBot] = server.handleSwitchToBot
	server.handlers[commandAgain] = server.handlePlayAgain
	server.handlers[commandState] = server.handleState
	server.handlers[commandHelp] = server.handleHelp
	server.handlers[commandQuit] = server.handleQuit

	gameUseCase.Subscribe(server.render)

	return server
}

// Run - reads commands until quit, end of input or ctx is cancelled.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	state, _ := that.gameUseCase.State()
	that.render(state)

	for {
		that.write(that.prompt)

		select {
		case <-ctx.Done():
			log.Info("console stopped")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			log.Info("end of input")
			return nil
		case line := <-lines:
			err := that.handleLine(ctx, line)
			if errors.Is(err, errQuit) {
				log.Info("player quit")
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string) error {
	command := strings.ToLower(strings.TrimSpace(line))
	if command == "" {
		return nil
	}

	handler, ok := that.handlers[command]
	if !ok {
		that.writeLine(fmt.Sprintf("%v: %q (type %q for the list)", apperror.ErrUnknownCommand, command, commandHelp))
		return nil
	}

	return handler(ctx)
}

func (that *Server) write(text string) {
	that.outMutex.Lock()
	defer that.outMutex.Unlock()

	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Server) writeLine(text string) {
	that.write(text + "\n")
}
