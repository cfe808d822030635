package match

import "errors"

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidPasscode = errors.New("invalid_passcode")
	ErrValidation      = errors.New("validation_failed")
)
