package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tokens-backend/internal/apperror"
)

// MoveFunc plays the bot's token for the given state version.
type MoveFunc func(ctx context.Context, version uint64) error

type BotService interface {
	Schedule(ctx context.Context, version uint64, move MoveFunc)
	Cancel()
	Close()
}

type botService struct {
	logger *slog.Logger
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	version uint64
	armed   bool
	closed  bool
}

func NewBotService(logger *slog.Logger, delay time.Duration) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		delay:  delay,
	}
}

// Schedule - arms a single deferred move for version. Scheduling the version
// that is already armed is a no-op; a newer version replaces the pending timer.
func (that *botService) Schedule(ctx context.Context, version uint64, move MoveFunc) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	if that.armed && that.version == version {
		return
	}

	that.stopLocked()

	that.version = version
	that.armed = true
	that.timer = time.AfterFunc(that.delay, func() {
		that.fire(ctx, version, move)
	})

	that.logger.Debug("bot move scheduled", "version", version, "delay", that.delay)
}

func (that *botService) Cancel() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()
}

func (that *botService) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()
	that.closed = true
}

func (that *botService) fire(ctx context.Context, version uint64, move MoveFunc) {
	log := that.logger.With("method", "fire", "version", version)

	that.mu.Lock()
	isValid := !that.closed && that.armed && that.version == version
	if isValid {
		that.armed = false
	}
	that.mu.Unlock()

	if !isValid || ctx.Err() != nil {
		return
	}

	err := move(ctx, version)
	switch {
	case err == nil:
		log.Debug("bot took a token")
	case errors.Is(err, apperror.ErrStaleMove), errors.Is(err, apperror.ErrGameFinished):
		log.Debug("bot move skipped", "reason", err)
	default:
		log.Error("bot failed to take a token", "error", err)
	}
}

func (that *botService) stopLocked() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
	that.armed = false
}
