package ports

import (
	"context"

	"github.com/briefpanel/brief-service/internal/core/domain"
)

type BriefService interface {
	ListBriefs() ([]domain.BriefInfo, error)
	GetBrief(filename string) ([]byte, error)

	// CreateBrief generates content for the topic, renders it into a full
	// HTML document and persists it, returning the stored filename.
	CreateBrief(ctx context.Context, topic, description string) (string, error)
}
