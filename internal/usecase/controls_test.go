package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tokens-backend/internal/entity"
)

func TestControlsFor(t *testing.T) {
	tests := []struct {
		name  string
		state *entity.GameState
		want  Controls
	}{
		{
			name:  "New game",
			state: entity.NewGame(),
			want:  Controls{TakeEnabled: true},
		},
		{
			name:  "Bot asked to open",
			state: &entity.GameState{TokensLeft: 12, CanTake: 1, BotMove: 1},
			want:  Controls{},
		},
		{
			name:  "Human part way through the opening",
			state: &entity.GameState{TokensLeft: 10, CanTake: 1, PlayerIsHuman: true},
			want:  Controls{TakeEnabled: true},
		},
		{
			name:  "Bot playing mid-game",
			state: &entity.GameState{TokensLeft: 9, CanTake: 1, BotMove: 2},
			want:  Controls{SwitchLocked: true},
		},
		{
			name:  "Human starting a later turn",
			state: &entity.GameState{TokensLeft: 8, CanTake: 3, PlayerIsHuman: true},
			want:  Controls{TakeEnabled: true, SwitchLocked: true},
		},
		{
			name:  "Human allowance equals the pool",
			state: &entity.GameState{TokensLeft: 2, CanTake: 2, PlayerIsHuman: true},
			want:  Controls{TakeEnabled: true, SwitchLocked: true},
		},
		{
			name:  "Game won by the human",
			state: &entity.GameState{PlayerIsHuman: true, Winner: entity.WinnerHuman},
			want:  Controls{SwitchLocked: true, PlayAgainVisible: true},
		},
		{
			name:  "Game won by the bot",
			state: &entity.GameState{BotMove: 1, Winner: entity.WinnerBot},
			want:  Controls{SwitchLocked: true, PlayAgainVisible: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ControlsFor(tt.state))
		})
	}
}
