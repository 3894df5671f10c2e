package boss

import "errors"

var (
	ErrUnknownPhase      = errors.New("boss: unknown phase")
	ErrIllegalTransition = errors.New("boss: illegal phase transition")
	ErrDefeated          = errors.New("boss: agent is defeated")
	ErrNoHealth          = errors.New("boss: health collaborator is nil")
	ErrInvalidStats      = errors.New("boss: invalid stats")
)
