package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tokens-backend/internal/entity"
	"github.com/rocketscienceinc/tokens-backend/internal/nim"
	"github.com/rocketscienceinc/tokens-backend/testing/suite"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (that *syncBuffer) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.Write(p)
}

func (that *syncBuffer) String() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.String()
}

func runScript(t *testing.T, script ...string) string {
	t.Helper()

	ctx, st := suite.New(t, time.Hour)
	out := &syncBuffer{}
	server := New(st.Logger, st.Manager, strings.NewReader(strings.Join(script, "\n")+"\n"), out, "> ")

	require.NoError(t, server.Run(ctx))

	return out.String()
}

func TestServer_Run(t *testing.T) {
	t.Run("Renders the opening", func(t *testing.T) {
		// When: the console starts and the player quits
		out := runScript(t, "quit")

		// Then: the full pool and the opening commands are shown
		assert.Contains(t, out, "Tokens left: 12 oooooooooooo")
		assert.Contains(t, out, "Your turn: you may take 3 more tokens.")
		assert.Contains(t, out, "Commands: take, bot, state, quit")
	})

	t.Run("Handing over mid-turn", func(t *testing.T) {
		// When: the human takes two tokens and hands over
		out := runScript(t, "take", "TAKE ", "bot", "state", "quit")

		// Then: the bot plans two tokens and the state reflects it
		assert.Contains(t, out, "Tokens left: 10")
		assert.Contains(t, out, "Bot's turn: 2 more tokens to take.")
		assert.Contains(t, out, `"game":{"tokens_left":10,"can_take":2,"bot_move":2,"player_is_human":false}`)
		assert.Contains(t, out, `"version":3`)
		assert.Contains(t, out, `"controls":{"take_enabled":false,"switch_locked":true,"play_again_visible":false}`)
	})

	t.Run("Refused commands are reported", func(t *testing.T) {
		// When: the human plays out of turn and asks for a new game too early
		out := runScript(t, "take", "take", "take", "take", "again", "bot", "quit")

		// Then: every refusal is explained and the session carries on
		assert.Contains(t, out, "! it's not your turn")
		assert.Contains(t, out, "! game is not finished yet")
		assert.Contains(t, out, "! the bot can no longer be asked to play")
	})

	t.Run("Unknown commands and help", func(t *testing.T) {
		out := runScript(t, "", "jump", "help", "quit")

		assert.Contains(t, out, `unknown command: "jump"`)
		assert.Contains(t, out, "again  start a new game once this one is over")
	})

	t.Run("End of input stops the console", func(t *testing.T) {
		ctx, st := suite.New(t, time.Hour)
		server := New(st.Logger, st.Manager, strings.NewReader("take\n"), io.Discard, "")

		require.NoError(t, server.Run(ctx))

		state, _ := st.Manager.State()
		assert.Equal(t, 11, state.TokensLeft)
	})

	t.Run("Cancelled context stops the console", func(t *testing.T) {
		// Given: an input that never sends anything
		ctx, st := suite.New(t, time.Hour)
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(ctx)
		server := New(st.Logger, st.Manager, reader, io.Discard, "")

		done := make(chan error, 1)
		go func() { done <- server.Run(ctx) }()

		// When: the context is cancelled
		cancel()

		// Then: Run returns without error
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("console did not stop")
		}
	})

	t.Run("Read errors are returned", func(t *testing.T) {
		ctx, st := suite.New(t, time.Hour)
		reader, writer := io.Pipe()
		server := New(st.Logger, st.Manager, reader, io.Discard, "")

		require.NoError(t, writer.CloseWithError(errReadFailed))

		err := server.Run(ctx)
		require.ErrorIs(t, err, errReadFailed)
	})
}

var errReadFailed = errors.New("read failed")

func TestServer_FullGame(t *testing.T) {
	// Given: a console wired to a quick bot
	ctx, st := suite.New(t, time.Millisecond)
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })
	out := &syncBuffer{}
	server := New(st.Logger, st.Manager, reader, out, "> ")

	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	send := func(command string) {
		t.Helper()
		_, err := io.WriteString(writer, command+"\n")
		require.NoError(t, err)
	}

	// When: the bot opens and the human always leaves a multiple of four
	send("bot")
	require.Eventually(t, func() bool {
		// version 1 hands over, version 2 is the bot's single token
		_, version := st.Manager.State()
		return version >= 2
	}, 5*time.Second, time.Millisecond)

	for turns := 0; ; turns++ {
		require.Less(t, turns, entity.StartingTotal, "game did not end")

		st.WaitForHuman()
		state, version := st.Manager.State()
		if state.IsFinished() {
			break
		}

		moves := nim.OptimalMove(state.TokensLeft)
		for i := 0; i < moves; i++ {
			send("take")
		}

		// wait for the console to apply every take before looking again
		require.Eventually(t, func() bool {
			_, current := st.Manager.State()
			return current >= version+uint64(moves)
		}, 5*time.Second, time.Millisecond)
	}

	// Then: the human wins and can start over
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "You win!") }, 5*time.Second, time.Millisecond)
	assert.Contains(t, out.String(), "Commands: again, state, quit")

	send("again")
	send("quit")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not stop")
	}

	state, _ := st.Manager.State()
	assert.Equal(t, entity.NewGame(), state)
}
