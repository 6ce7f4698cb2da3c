package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/briefpanel/brief-service/internal/core/domain"
	"github.com/briefpanel/brief-service/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// AuthService verifies passwords against the static credential store and
// issues/resolves signed session tokens. Tokens are self-contained: validity
// is derived from signature and expiry alone, there is no server-side
// session state and no revocation.
type AuthService struct {
	creds      ports.CredentialStore
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(creds ports.CredentialStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		creds:      creds,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// TokenTTL returns the configured default token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// HashPassword produces a salted bcrypt hash. Two calls on the same input
// yield different hashes; both verify.
func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether hash was produced from plain.
func (s *AuthService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindByUsername(username)
	if err != nil {
		// Unknown user reports the same failure as a wrong password.
		return nil, domain.ErrInvalidCredentials
	}

	if !s.VerifyPassword(password, cred.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.User{Username: cred.Username}, nil
}

func (s *AuthService) IssueToken(username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.tokenTTL
	}
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) ResolveToken(token string) *domain.User {
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}

	cred, err := s.creds.FindByUsername(sub)
	if err != nil {
		return nil
	}

	return &domain.User{Username: cred.Username}
}
