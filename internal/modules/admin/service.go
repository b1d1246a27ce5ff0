package admin

import (
	"golang.org/x/crypto/bcrypt"

	jwtsvc "kikabraids/internal/pkg/jwt"
)

// Service verifies the shared admin password and issues signed tokens. The
// password is bcrypt-hashed once at construction so the plaintext never
// sticks around, and every mutating admin route checks the token.
type Service struct {
	passwordHash []byte
	jwt          *jwtsvc.Service
}

func NewService(password string, jwt *jwtsvc.Service) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{passwordHash: hash, jwt: jwt}, nil
}

func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	return s.jwt.GenerateToken(jwtsvc.RoleAdmin)
}
