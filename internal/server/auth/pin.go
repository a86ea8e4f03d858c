package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PINLength is the number of digits a PIN must have.
const PINLength = 4

const pinHashCost = bcrypt.DefaultCost

// ValidPIN reports whether pin is exactly PINLength ASCII digits.
func ValidPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// HashPIN returns the bcrypt hash of pin.
func HashPIN(pin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), pinHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePIN reports whether pin matches hash. A malformed hash is an error,
// a plain mismatch is not.
func ComparePIN(hash, pin string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
