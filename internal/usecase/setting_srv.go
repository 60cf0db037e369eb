package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingService interface {
	// Public endpoints; both read JSON-encoded string arrays stored under
	// their settings keys
	GetGallery(ctx context.Context) (*response.GalleryResponse, error)
	GetVideos(ctx context.Context) (*response.VideosResponse, error)

	// Admin endpoints
	ListSettings(ctx context.Context) ([]response.SettingResponse, error)
	GetSetting(ctx context.Context, key string) (*response.SettingResponse, error)
	UpsertSetting(ctx context.Context, key string, req *request.UpsertSettingRequest) (*response.SettingResponse, error)
	UpdateGallery(ctx context.Context, req *request.UpdateGalleryRequest) (*response.GalleryResponse, error)
	UpdateVideos(ctx context.Context, req *request.UpdateVideosRequest) (*response.VideosResponse, error)
}

type settingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSettingService(repo *repository.Repository, log *zap.Logger) SettingService {
	return &settingService{
		repo: repo,
		log:  log.With(zap.String("service", "setting")),
	}
}

// ==================== PUBLIC ENDPOINTS ====================

func (s *settingService) GetGallery(ctx context.Context) (*response.GalleryResponse, error) {
	images, err := s.readList(ctx, entity.SettingKeyGalleryImages)
	if err != nil {
		return nil, err
	}

	return &response.GalleryResponse{Images: images}, nil
}

func (s *settingService) GetVideos(ctx context.Context) (*response.VideosResponse, error) {
	links, err := s.readList(ctx, entity.SettingKeyVideoLinks)
	if err != nil {
		return nil, err
	}

	return &response.VideosResponse{Links: links}, nil
}

// ==================== ADMIN ENDPOINTS ====================

func (s *settingService) ListSettings(ctx context.Context) ([]response.SettingResponse, error) {
	settings, err := s.repo.Setting.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	responses := make([]response.SettingResponse, len(settings))
	for i, setting := range settings {
		responses[i] = response.SettingToResponse(setting)
	}

	return responses, nil
}

func (s *settingService) GetSetting(ctx context.Context, key string) (*response.SettingResponse, error) {
	setting, err := s.repo.Setting.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	if setting == nil {
		return nil, fmt.Errorf("setting %s not found", key)
	}

	resp := response.SettingToResponse(setting)
	return &resp, nil
}

func (s *settingService) UpsertSetting(ctx context.Context, key string, req *request.UpsertSettingRequest) (*response.SettingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert setting validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if key == "" {
		return nil, fmt.Errorf("invalid setting: empty key")
	}

	setting := &entity.Setting{
		Key:       key,
		Value:     req.Value,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Setting.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("upsert setting %s: %w", key, err)
	}

	s.log.Info("Setting upserted", zap.String("key", key))

	resp := response.SettingToResponse(setting)
	return &resp, nil
}

func (s *settingService) UpdateGallery(ctx context.Context, req *request.UpdateGalleryRequest) (*response.GalleryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update gallery validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.writeList(ctx, entity.SettingKeyGalleryImages, req.Images); err != nil {
		return nil, err
	}

	return &response.GalleryResponse{Images: req.Images}, nil
}

func (s *settingService) UpdateVideos(ctx context.Context, req *request.UpdateVideosRequest) (*response.VideosResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update videos validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.writeList(ctx, entity.SettingKeyVideoLinks, req.Links); err != nil {
		return nil, err
	}

	return &response.VideosResponse{Links: req.Links}, nil
}

// ==================== HELPER METHODS ====================

func (s *settingService) readList(ctx context.Context, key string) ([]string, error) {
	setting, err := s.repo.Setting.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	if setting == nil || setting.Value == "" {
		// Absent key serves an empty list, not an error
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(setting.Value), &list); err != nil {
		s.log.Warn("Setting value is not a JSON string array",
			zap.Error(err),
			zap.String("key", key),
		)
		return []string{}, nil
	}

	return list, nil
}

func (s *settingService) writeList(ctx context.Context, key string, list []string) error {
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal setting %s: %w", key, err)
	}

	setting := &entity.Setting{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Setting.Upsert(ctx, setting); err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}

	return nil
}
