package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotFinished = errors.New("game is not finished yet")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrSwitchLocked      = errors.New("the bot can no longer be asked to play")
	ErrStaleMove         = errors.New("bot move is out of date")
	ErrUnknownCommand    = errors.New("unknown command")
)
