package game

import "errors"

var (
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrInvalidRoles       = errors.New("invalid role-cards")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrNoEligibleActor    = errors.New("no living player can act")
	ErrWrongPhase         = errors.New("wrong phase for this action")
	ErrGameOver           = errors.New("game is over")
	ErrRevealComplete     = errors.New("every role is already revealed")
)
