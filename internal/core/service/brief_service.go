package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/briefpanel/brief-service/internal/core/domain"
	"github.com/briefpanel/brief-service/internal/core/ports"
)

// BriefService composes the generation adapter and the brief store.
type BriefService struct {
	store     ports.BriefStore
	generator ports.Generator
	log       zerolog.Logger
}

func NewBriefService(store ports.BriefStore, generator ports.Generator, log zerolog.Logger) *BriefService {
	return &BriefService{store: store, generator: generator, log: log}
}

func (s *BriefService) ListBriefs() ([]domain.BriefInfo, error) {
	return s.store.List()
}

func (s *BriefService) GetBrief(filename string) ([]byte, error) {
	return s.store.Read(filename)
}

func (s *BriefService) CreateBrief(ctx context.Context, topic, description string) (string, error) {
	fragment, err := s.generator.Generate(ctx, topic, description)
	if err != nil {
		s.log.Error().Err(err).Str("topic", topic).Msg("brief generation failed")
		return "", err
	}

	filename, err := s.store.Write(topic, RenderBrief(topic, fragment))
	if err != nil {
		return "", fmt.Errorf("store brief: %w", err)
	}

	s.log.Info().Str("topic", topic).Str("filename", filename).Msg("brief created")
	return filename, nil
}
