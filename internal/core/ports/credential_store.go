package ports

import "github.com/briefpanel/brief-service/internal/core/domain"

// CredentialStore defines read access to the static credential mapping.
// Implementations are immutable after construction.
type CredentialStore interface {
	FindByUsername(username string) (*domain.Credential, error)
}
