package score

import "errors"

var (
	ErrNotFound            = errors.New("not_found")
	ErrValidation          = errors.New("validation_failed")
	ErrIllegalTransition   = errors.New("illegal_transition")
	ErrUnknownAction       = errors.New("unknown_action")
	ErrNoActiveInnings     = errors.New("no_active_innings")
	ErrMissingParticipants = errors.New("missing_participants")
	ErrNothingToUndo       = errors.New("nothing_to_undo")
)
