// Package memory holds the static credential mapping: an in-process map
// loaded once from configuration and read-only afterwards. There is no
// database anywhere in this service.
package memory

import (
	"github.com/briefpanel/brief-service/internal/core/domain"
)

type CredentialStore struct {
	byUsername map[string]domain.Credential
}

// NewCredentialStore copies the given credentials into an immutable lookup
// table. Later mutation of the input slice does not affect the store.
func NewCredentialStore(creds []domain.Credential) *CredentialStore {
	byUsername := make(map[string]domain.Credential, len(creds))
	for _, c := range creds {
		byUsername[c.Username] = c
	}
	return &CredentialStore{byUsername: byUsername}
}

func (s *CredentialStore) FindByUsername(username string) (*domain.Credential, error) {
	cred, ok := s.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &cred, nil
}
