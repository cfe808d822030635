// Package passcode hashes and checks the 4-6 digit scorer passcodes.
package passcode

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidFormat = errors.New("passcode must be 4-6 digits")

// Validate enforces the passcode format before hashing or comparing.
func Validate(code string) error {
	if len(code) < 4 || len(code) > 6 {
		return ErrInvalidFormat
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrInvalidFormat
		}
	}
	return nil
}

func Hash(code string) (string, error) {
	if err := Validate(code); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether code matches the stored hash.
func Verify(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
