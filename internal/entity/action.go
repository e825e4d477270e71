package entity

// Action is one of SetHumanTurn or TakeToken.
type Action interface {
	action()
}

// SetHumanTurn asks for the active player's humanness to become IsHuman.
type SetHumanTurn struct {
	IsHuman bool
}

// TakeToken removes exactly one token on behalf of the active player.
type TakeToken struct{}

func (SetHumanTurn) action() {}
func (TakeToken) action()    {}
