package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tokens-backend/internal/entity"
	"github.com/rocketscienceinc/tokens-backend/internal/usecase"
)

// render - draws the counter, whose turn it is and the commands on offer.
func (that *Server) render(state *entity.GameState) {
	var view strings.Builder

	fmt.Fprintf(&view, "\nTokens left: %d %s\n", state.TokensLeft, strings.Repeat("o", max(state.TokensLeft, 0)))

	switch {
	case state.Winner.IsHuman():
		view.WriteString("You win!\n")
	case state.Winner.IsSet():
		view.WriteString("The bot wins.\n")
	case state.PlayerIsHuman:
		fmt.Fprintf(&view, "Your turn: you may take %d more %s.\n", state.CanTake, plural(state.CanTake))
	default:
		fmt.Fprintf(&view, "Bot's turn: %d more %s to take.\n", state.CanTake, plural(state.CanTake))
	}

	fmt.Fprintf(&view, "Commands: %s\n", strings.Join(commandsFor(usecase.ControlsFor(state)), ", "))

	that.write(view.String())
}

func commandsFor(controls usecase.Controls) []string {
	commands := make([]string, 0, 5)

	if controls.TakeEnabled {
		commands = append(commands, commandTake)
	}
	if !controls.SwitchLocked {
		commands = append(commands, commandBot)
	}
	if controls.PlayAgainVisible {
		commands = append(commands, commandAgain)
	}

	return append(commands, commandState, commandQuit)
}

func plural(n int) string {
	if n == 1 {
		return "token"
	}
	return "tokens"
}
