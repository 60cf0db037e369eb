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

type FAQService interface {
	// Public endpoint
	ListFAQs(ctx context.Context, locale string) ([]response.FAQResponse, error)

	// Admin endpoints
	ListAllFAQs(ctx context.Context) ([]response.FAQResponse, error)
	CreateFAQ(ctx context.Context, req *request.FAQRequest) (*response.FAQResponse, error)
	UpdateFAQ(ctx context.Context, faqID string, req *request.FAQUpdateRequest) (*response.FAQResponse, error)
	DeleteFAQ(ctx context.Context, faqID string) error
}

type faqService struct {
	repo        *repository.Repository
	translation TranslationService
	log         *zap.Logger
}

func NewFAQService(repo *repository.Repository, translation TranslationService, log *zap.Logger) FAQService {
	return &faqService{
		repo:        repo,
		translation: translation,
		log:         log.With(zap.String("service", "faq")),
	}
}

// ==================== PUBLIC ENDPOINT ====================

func (s *faqService) ListFAQs(ctx context.Context, locale string) ([]response.FAQResponse, error) {
	faqs, err := s.repo.FAQ.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	s.translation.ApplyToFAQs(ctx, locale, faqs)

	return s.toResponses(faqs), nil
}

// ==================== ADMIN ENDPOINTS ====================

func (s *faqService) ListAllFAQs(ctx context.Context) ([]response.FAQResponse, error) {
	faqs, err := s.repo.FAQ.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all faqs: %w", err)
	}

	return s.toResponses(faqs), nil
}

func (s *faqService) CreateFAQ(ctx context.Context, req *request.FAQRequest) (*response.FAQResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create FAQ validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	faq := &entity.FAQ{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
		IsActive: isActive,
	}

	if err := s.repo.FAQ.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, faqID string, req *request.FAQUpdateRequest) (*response.FAQResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update FAQ validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(faqID)
	if err != nil {
		return nil, fmt.Errorf("invalid FAQ ID format %s: %w", faqID, err)
	}

	faq, err := s.repo.FAQ.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get faq %s: %w", faqID, err)
	}
	if faq == nil {
		return nil, fmt.Errorf("faq %s not found", faqID)
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Position != nil {
		faq.Position = *req.Position
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	faq.UpdatedAt = time.Now()

	if err := s.repo.FAQ.Update(ctx, faq); err != nil {
		return nil, fmt.Errorf("update faq: %w", err)
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *faqService) DeleteFAQ(ctx context.Context, faqID string) error {
	id, err := uuid.Parse(faqID)
	if err != nil {
		return fmt.Errorf("invalid FAQ ID format %s: %w", faqID, err)
	}

	return s.repo.FAQ.Delete(ctx, id)
}

// ==================== HELPER METHODS ====================

func (s *faqService) toResponses(faqs []*entity.FAQ) []response.FAQResponse {
	responses := make([]response.FAQResponse, len(faqs))
	for i, faq := range faqs {
		responses[i] = response.FAQToResponse(faq)
	}

	return responses
}
