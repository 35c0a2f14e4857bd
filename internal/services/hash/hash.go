package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrFailedToHashPassword = errors.New("failed to hash password")

// bcryptCost is the adaptive work factor. bcrypt embeds a fresh random salt
// in every digest it produces.
const bcryptCost = 10

type HashService struct {
	cost int
}

func NewHashService() *HashService {
	return &HashService{
		cost: bcryptCost,
	}
}

func (hs *HashService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hs.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToHashPassword, err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored digest.
// An empty or malformed digest verifies false rather than erroring out, so
// accounts with no stored hash fail authentication the same way a wrong
// password does.
func (hs *HashService) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
