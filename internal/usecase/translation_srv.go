package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TranslationService interface {
	// Admin endpoints
	Upsert(ctx context.Context, req *request.UpsertTranslationRequest) (*response.TranslationResponse, error)
	ListForEntity(ctx context.Context, entityType, entityID string) ([]*response.TranslationResponse, error)
	Delete(ctx context.Context, translationID string) error

	// Attachment used by the public catalog and FAQ listings. Rows without a
	// stored translation for the locale keep their base-language fields.
	ApplyToPackages(ctx context.Context, locale string, packages []*entity.TourPackage)
	ApplyToFAQs(ctx context.Context, locale string, faqs []*entity.FAQ)
}

type translationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTranslationService(repo *repository.Repository, log *zap.Logger) TranslationService {
	return &translationService{
		repo: repo,
		log:  log.With(zap.String("service", "translation")),
	}
}

func (s *translationService) Upsert(ctx context.Context, req *request.UpsertTranslationRequest) (*response.TranslationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert translation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	entityType := entity.TranslatedEntity(req.EntityType)
	if !entityType.Valid() {
		return nil, fmt.Errorf("invalid entity type %s", req.EntityType)
	}

	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID format %s: %w", req.EntityID, err)
	}

	now := time.Now()
	translation := &entity.Translation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EntityType: entityType,
		EntityID:   entityID,
		Locale:     req.Locale,
		Fields:     req.Fields,
	}

	if err := s.repo.Translation.Upsert(ctx, translation); err != nil {
		s.log.Error("Failed to upsert translation",
			zap.Error(err),
			zap.String("entity_type", req.EntityType),
			zap.String("entity_id", req.EntityID),
			zap.String("locale", req.Locale),
		)
		return nil, fmt.Errorf("upsert translation: %w", err)
	}

	s.log.Info("Translation upserted",
		zap.String("entity_type", req.EntityType),
		zap.String("entity_id", req.EntityID),
		zap.String("locale", req.Locale),
		zap.Int("field_count", len(req.Fields)),
	)

	resp := response.TranslationToResponse(translation)
	return &resp, nil
}

func (s *translationService) ListForEntity(ctx context.Context, entityType, entityID string) ([]*response.TranslationResponse, error) {
	parsedType := entity.TranslatedEntity(entityType)
	if !parsedType.Valid() {
		return nil, fmt.Errorf("invalid entity type %s", entityType)
	}

	id, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID format %s: %w", entityID, err)
	}

	translations, err := s.repo.Translation.FindByEntity(ctx, parsedType, id)
	if err != nil {
		s.log.Error("Failed to list translations",
			zap.Error(err),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
		)
		return nil, fmt.Errorf("list translations: %w", err)
	}

	responses := make([]*response.TranslationResponse, len(translations))
	for i, translation := range translations {
		resp := response.TranslationToResponse(translation)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *translationService) Delete(ctx context.Context, translationID string) error {
	id, err := uuid.Parse(translationID)
	if err != nil {
		return fmt.Errorf("invalid translation ID format %s: %w", translationID, err)
	}

	if err := s.repo.Translation.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete translation",
			zap.Error(err),
			zap.String("translation_id", translationID),
		)
		return fmt.Errorf("delete translation %s: %w", translationID, err)
	}

	return nil
}

// ==================== ATTACHMENT ====================

func (s *translationService) ApplyToPackages(ctx context.Context, locale string, packages []*entity.TourPackage) {
	if locale == "" || len(packages) == 0 {
		return
	}

	ids := make([]uuid.UUID, len(packages))
	for i, pkg := range packages {
		ids[i] = pkg.ID
	}

	fieldsByID, err := s.repo.Translation.FindForEntities(ctx, entity.TranslatedEntityPackage, ids, locale)
	if err != nil {
		// Lookup failure degrades to base language, never fails the listing
		s.log.Warn("Translation lookup failed, serving base language",
			zap.Error(err),
			zap.String("locale", locale),
		)
		return
	}

	for _, pkg := range packages {
		fields, ok := fieldsByID[pkg.ID]
		if !ok {
			continue
		}

		if v, ok := fields["name"]; ok && v != "" {
			pkg.Name = v
		}
		if v, ok := fields["summary"]; ok && v != "" {
			summary := v
			pkg.Summary = &summary
		}
		if v, ok := fields["description"]; ok && v != "" {
			description := v
			pkg.Description = &description
		}
	}
}

func (s *translationService) ApplyToFAQs(ctx context.Context, locale string, faqs []*entity.FAQ) {
	if locale == "" || len(faqs) == 0 {
		return
	}

	ids := make([]uuid.UUID, len(faqs))
	for i, faq := range faqs {
		ids[i] = faq.ID
	}

	fieldsByID, err := s.repo.Translation.FindForEntities(ctx, entity.TranslatedEntityFAQ, ids, locale)
	if err != nil {
		s.log.Warn("Translation lookup failed, serving base language",
			zap.Error(err),
			zap.String("locale", locale),
		)
		return
	}

	for _, faq := range faqs {
		fields, ok := fieldsByID[faq.ID]
		if !ok {
			continue
		}

		if v, ok := fields["question"]; ok && v != "" {
			faq.Question = v
		}
		if v, ok := fields["answer"]; ok && v != "" {
			faq.Answer = v
		}
	}
}
