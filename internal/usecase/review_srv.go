package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Public endpoint
	ListReviews(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ReviewResponse], error)

	// Admin endpoints
	ListAllReviews(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ReviewResponse], error)
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error

	// SyncReviews pulls the configured external feed and upserts its entries
	// as source=synced rows keyed by the feed item id.
	SyncReviews(ctx context.Context) (*response.ReviewSyncResponse, error)
}

type reviewService struct {
	repo   *repository.Repository
	config *utils.Config
	http   *http.Client
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		config: config,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    log.With(zap.String("service", "review")),
	}
}

// ==================== PUBLIC ENDPOINT ====================

func (s *reviewService) ListReviews(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ReviewResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	reviews, err := s.repo.Review.FindActive(ctx, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	return s.paginate(reviews, page, perPage, total), nil
}

// ==================== ADMIN ENDPOINTS ====================

func (s *reviewService) ListAllReviews(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ReviewResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	reviews, err := s.repo.Review.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list all reviews: %w", err)
	}

	total, err := s.repo.Review.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count all reviews: %w", err)
	}

	return s.paginate(reviews, page, perPage, total), nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Author:   req.Author,
		Rating:   req.Rating,
		Text:     req.Text,
		Source:   entity.ReviewSourceManual,
		IsActive: isActive,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	if req.Author != nil {
		review.Author = *req.Author
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.IsActive != nil {
		review.IsActive = *req.IsActive
	}
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	return s.repo.Review.Delete(ctx, id)
}

// ==================== FEED SYNC ====================

// feedItem is one entry of the external review feed
type feedItem struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (s *reviewService) SyncReviews(ctx context.Context) (*response.ReviewSyncResponse, error) {
	if s.config.Reviews.FeedURL == "" {
		return nil, fmt.Errorf("invalid review sync: no feed URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.Reviews.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build review feed request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch review feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch review feed: unexpected status %d", resp.StatusCode)
	}

	var items []feedItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode review feed: %w", err)
	}

	result := &response.ReviewSyncResponse{Fetched: len(items)}
	for _, item := range items {
		if item.ID == "" || item.Author == "" || item.Rating < 1 || item.Rating > 5 {
			result.Skipped++
			continue
		}

		created, err := s.upsertSynced(ctx, item)
		if err != nil {
			s.log.Warn("Review feed item skipped",
				zap.Error(err),
				zap.String("source_ref", item.ID),
			)
			result.Skipped++
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.log.Info("Review feed synced",
		zap.Int("fetched", result.Fetched),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *reviewService) upsertSynced(ctx context.Context, item feedItem) (bool, error) {
	existing, err := s.repo.Review.FindBySourceRef(ctx, item.ID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		existing.Author = item.Author
		existing.Rating = item.Rating
		existing.Text = item.Text
		existing.UpdatedAt = time.Now()
		return false, s.repo.Review.Update(ctx, existing)
	}

	sourceRef := item.ID
	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Author:    item.Author,
		Rating:    item.Rating,
		Text:      item.Text,
		Source:    entity.ReviewSourceSynced,
		SourceRef: &sourceRef,
		IsActive:  true,
	}

	return true, s.repo.Review.Create(ctx, review)
}

// ==================== HELPER METHODS ====================

func (s *reviewService) paginate(reviews []*entity.Review, page, perPage int, total int64) *response.PaginatedResponse[response.ReviewResponse] {
	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total)
}
