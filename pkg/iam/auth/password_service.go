package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/udistrital/unidoc_api/pkg/errx"
)

// PasswordService hashes and verifies credentials
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// BcryptPasswordService implements PasswordService with bcrypt
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a bcrypt password service with default cost
func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

// Hash produces a bcrypt hash of the password
func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}
	return string(hash), nil
}

// Compare reports whether the password matches the stored hash
func (s *BcryptPasswordService) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
