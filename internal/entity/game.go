package entity

// House rules.
const (
	StartingTotal = 12
	MaxTaken      = 3
)

// Winner records who removed the last token.
type Winner int8

const (
	WinnerUnset Winner = iota
	WinnerHuman
	WinnerBot
)

// WinnerFor returns the winner for a player that took the last token.
func WinnerFor(playerIsHuman bool) Winner {
	if playerIsHuman {
		return WinnerHuman
	}
	return WinnerBot
}

func (that Winner) IsSet() bool {
	return that != WinnerUnset
}

func (that Winner) IsHuman() bool {
	return that == WinnerHuman
}

func (that Winner) String() string {
	switch that {
	case WinnerHuman:
		return "human"
	case WinnerBot:
		return "bot"
	default:
		return ""
	}
}

func (that Winner) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// GameState is never mutated once built; every transition produces a new one.
type GameState struct {
	TokensLeft    int    `json:"tokens_left"`
	CanTake       int    `json:"can_take"`
	BotMove       int    `json:"bot_move"`
	PlayerIsHuman bool   `json:"player_is_human"`
	Winner        Winner `json:"winner,omitempty"`
}

// NewGame returns the starting state: the human moves first with the full pool.
func NewGame() *GameState {
	return &GameState{
		TokensLeft:    StartingTotal,
		CanTake:       MaxTaken,
		BotMove:       0,
		PlayerIsHuman: true,
		Winner:        WinnerUnset,
	}
}

func (that *GameState) IsFinished() bool {
	return that.Winner.IsSet()
}

// IsBotTurn reports whether the bot still has a move to play.
func (that *GameState) IsBotTurn() bool {
	return !that.PlayerIsHuman && !that.IsFinished()
}

// Clone returns a shallow copy of the state.
func (that *GameState) Clone() *GameState {
	next := *that
	return &next
}
