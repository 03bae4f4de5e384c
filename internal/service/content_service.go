package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/repository"
	"gorm.io/gorm"
)

type ContentService interface {
	Get(unitID uint, kind string) (*dto.GeneratedContentDTO, error)
	Generate(ctx context.Context, unitID uint, kind string) (*dto.GeneratedContentDTO, error)
}

type contentService struct {
	unitRepo    repository.UnitRepository
	contentRepo repository.ContentRepository
	generator   ContentGenerator
}

func NewContentService(
	unitRepo repository.UnitRepository,
	contentRepo repository.ContentRepository,
	generator ContentGenerator,
) ContentService {
	return &contentService{unitRepo: unitRepo, contentRepo: contentRepo, generator: generator}
}

func validKind(kind string) bool {
	return kind == model.ContentKindEnrichment || kind == model.ContentKindReading
}

func (s *contentService) Get(unitID uint, kind string) (*dto.GeneratedContentDTO, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentKind, kind)
	}
	cached, err := s.contentRepo.FindLatest(unitID, kind)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no %s content for unit %d", ErrNoContent, kind, unitID)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching cached content: %w", err)
	}
	return contentDTO(cached, true), nil
}

// Generate calls the AI collaborator and caches the result. Generation is
// best-effort: on failure the most recent cached payload is served instead,
// and the error only reaches the caller when no fallback exists.
func (s *contentService) Generate(ctx context.Context, unitID uint, kind string) (*dto.GeneratedContentDTO, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentKind, kind)
	}
	unit, err := s.unitRepo.FindByIDWithWords(unitID)
	if err != nil {
		return nil, fmt.Errorf("unit not found with ID %d: %w", unitID, err)
	}
	if len(unit.Words) == 0 {
		return nil, fmt.Errorf("%w: unit %d", ErrNoContent, unitID)
	}

	var payload string
	switch kind {
	case model.ContentKindEnrichment:
		payload, err = s.generator.GenerateEnrichment(ctx, unit.Words)
	case model.ContentKindReading:
		payload, err = s.generator.GenerateReading(ctx, unit.Words)
	}
	if err != nil {
		log.Warn().Err(err).Uint("unitID", unitID).Str("kind", kind).
			Msg("Generation failed, falling back to cached content")
		cached, cacheErr := s.contentRepo.FindLatest(unitID, kind)
		if cacheErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		return contentDTO(cached, true), nil
	}

	content := model.GeneratedContent{UnitID: unitID, Kind: kind, Payload: payload}
	if err := s.contentRepo.Create(&content); err != nil {
		// The generated payload is still good; losing the cache write only
		// costs the next fallback.
		log.Error().Err(err).Uint("unitID", unitID).Str("kind", kind).Msg("Failed to cache generated content")
	}

	log.Info().Uint("unitID", unitID).Str("kind", kind).Int("bytes", len(payload)).Msg("Content generated")
	return contentDTO(&content, false), nil
}

func contentDTO(content *model.GeneratedContent, fromCache bool) *dto.GeneratedContentDTO {
	return &dto.GeneratedContentDTO{
		UnitID:      content.UnitID,
		Kind:        content.Kind,
		Payload:     json.RawMessage(content.Payload),
		GeneratedAt: content.CreatedAt,
		FromCache:   fromCache,
	}
}
