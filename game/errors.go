package game

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidWinner = errors.New("no submission for that player")
)
