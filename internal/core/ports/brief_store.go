package ports

import "github.com/briefpanel/brief-service/internal/core/domain"

// BriefStore defines durable storage for generated briefs.
type BriefStore interface {
	// List returns all stored briefs sorted by creation time descending.
	// An empty or absent store directory yields an empty slice, not an error.
	List() ([]domain.BriefInfo, error)

	// Read returns the raw bytes of a stored brief. Filenames that do not
	// name an entry directly inside the store, traversal attempts included,
	// fail with domain.ErrBriefNotFound.
	Read(filename string) ([]byte, error)

	// Write persists content under a filename derived from the title and the
	// current second-granularity timestamp, returning the filename used.
	Write(title string, content []byte) (string, error)
}
