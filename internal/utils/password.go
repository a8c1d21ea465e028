package utils

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/corebanc/bankledger_app/internal/apperrors"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the registration password policy: confirmation
// must match and the password needs upper and lower case letters, a digit and
// a special character.
func ValidatePassword(password, confirmPassword string) error {
	if password != confirmPassword {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower {
		return fmt.Errorf("%w: password must contain upper and lower case letters", apperrors.ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain a digit", apperrors.ErrValidation)
	}
	if !hasSpecial {
		return fmt.Errorf("%w: password must contain a special character", apperrors.ErrValidation)
	}
	return nil
}
