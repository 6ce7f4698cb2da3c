package ports

import (
	"context"
	"time"

	"github.com/briefpanel/brief-service/internal/core/domain"
)

type AuthService interface {
	// Authenticate checks the credentials against the credential store.
	// A single domain.ErrInvalidCredentials covers both unknown username
	// and wrong password so the response never reveals which one failed.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// IssueToken signs a session token for username expiring after ttl.
	IssueToken(username string, ttl time.Duration) (string, error)

	// ResolveToken returns the user a token proves, or nil on any failure:
	// malformed token, wrong algorithm or secret, tampered payload, expiry,
	// missing or unknown subject. It never returns an error and is safe to
	// call with an empty string.
	ResolveToken(token string) *domain.User
}
