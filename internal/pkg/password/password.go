package password

import (
	"facility-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errs.New("password hashing failed")
	ErrMismatch        = errs.New("password does not match")
	ErrInvalidPassword = errs.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	return HashPasswordWithCost(plain, DefaultCost)
}

// HashPasswordWithCost lets fixtures use bcrypt.MinCost.
func HashPasswordWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
