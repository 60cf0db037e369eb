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
	"tour-booking/pkg/cache"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CatalogService interface {
	// Public endpoints
	ListPackages(ctx context.Context, packageType, locale string, page, perPage int) (*response.PaginatedResponse[response.PackageResponse], error)
	GetPackageBySlug(ctx context.Context, slug, locale string) (*response.PackageDetailResponse, error)

	// Admin endpoints
	CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageDetailResponse, error)
	ListAllPackages(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.PackageDetailResponse], error)
	GetPackageByID(ctx context.Context, packageID string) (*response.PackageDetailResponse, error)
	UpdatePackage(ctx context.Context, packageID string, req *request.PackageUpdateRequest) (*response.PackageDetailResponse, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type catalogService struct {
	repo        *repository.Repository
	translation TranslationService
	rdb         *redis.Client
	config      *utils.Config
	log         *zap.Logger
}

func NewCatalogService(
	repo *repository.Repository,
	translation TranslationService,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		repo:        repo,
		translation: translation,
		rdb:         rdb,
		config:      config,
		log:         log.With(zap.String("service", "catalog")),
	}
}

// ==================== PUBLIC ENDPOINTS ====================

func (s *catalogService) ListPackages(ctx context.Context, packageType, locale string, page, perPage int) (*response.PaginatedResponse[response.PackageResponse], error) {
	if packageType != "" && !entity.PackageType(packageType).Valid() {
		return nil, fmt.Errorf("invalid package type %s", packageType)
	}

	cacheKey := cache.PackageListKey(packageType, locale, page, perPage)
	if cached := s.readCachedList(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	offset := utils.CalculateOffset(page, perPage)
	packages, err := s.repo.Package.FindActive(ctx, packageType, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	total, err := s.repo.Package.CountActive(ctx, packageType)
	if err != nil {
		return nil, fmt.Errorf("count packages: %w", err)
	}

	s.translation.ApplyToPackages(ctx, locale, packages)

	responses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		responses[i] = response.PackageToResponse(pkg)
	}

	paginated := response.NewPaginatedResponse(responses, page, perPage, total)
	s.writeCachedList(ctx, cacheKey, paginated)

	return paginated, nil
}

func (s *catalogService) GetPackageBySlug(ctx context.Context, slug, locale string) (*response.PackageDetailResponse, error) {
	pkg, err := s.repo.Package.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get package by slug %s: %w", slug, err)
	}
	if pkg == nil || !pkg.IsActive {
		// Inactive packages are invisible on the public site
		return nil, fmt.Errorf("package %s not found", slug)
	}

	s.translation.ApplyToPackages(ctx, locale, []*entity.TourPackage{pkg})

	resp := response.PackageToDetailResponse(pkg)
	return &resp, nil
}

// ==================== ADMIN ENDPOINTS ====================

func (s *catalogService) CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageDetailResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	existing, err := s.repo.Package.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check package slug %s: %w", slug, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("invalid slug: %s already exists", slug)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.config.Gateway.Currency
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	pkg := &entity.TourPackage{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:         entity.PackageType(req.Type),
		Name:         req.Name,
		Slug:         slug,
		Summary:      req.Summary,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     currency,
		DurationDays: req.DurationDays,
		Images:       req.Images,
		Highlights:   req.Highlights,
		IsActive:     isActive,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.invalidateListCache(ctx)
	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("slug", pkg.Slug),
	)

	resp := response.PackageToDetailResponse(pkg)
	return &resp, nil
}

func (s *catalogService) ListAllPackages(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.PackageDetailResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	packages, err := s.repo.Package.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list all packages: %w", err)
	}

	total, err := s.repo.Package.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count all packages: %w", err)
	}

	responses := make([]response.PackageDetailResponse, len(packages))
	for i, pkg := range packages {
		responses[i] = response.PackageToDetailResponse(pkg)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *catalogService) GetPackageByID(ctx context.Context, packageID string) (*response.PackageDetailResponse, error) {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", packageID, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", packageID)
	}

	resp := response.PackageToDetailResponse(pkg)
	return &resp, nil
}

func (s *catalogService) UpdatePackage(ctx context.Context, packageID string, req *request.PackageUpdateRequest) (*response.PackageDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", packageID, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", packageID)
	}

	if req.Type != nil {
		pkg.Type = entity.PackageType(*req.Type)
	}
	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != pkg.Slug {
		existing, err := s.repo.Package.FindBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check package slug %s: %w", *req.Slug, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("invalid slug: %s already exists", *req.Slug)
		}
		pkg.Slug = *req.Slug
	}
	if req.Summary != nil {
		pkg.Summary = req.Summary
	}
	if req.Description != nil {
		pkg.Description = req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Currency != nil {
		pkg.Currency = *req.Currency
	}
	if req.DurationDays != nil {
		pkg.DurationDays = *req.DurationDays
	}
	if req.Images != nil {
		pkg.Images = req.Images
	}
	if req.Highlights != nil {
		pkg.Highlights = req.Highlights
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	pkg.UpdatedAt = time.Now()

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}

	s.invalidateListCache(ctx)
	s.log.Info("Package updated", zap.String("package_id", pkg.ID.String()))

	resp := response.PackageToDetailResponse(pkg)
	return &resp, nil
}

func (s *catalogService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	if err := s.repo.Package.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// ==================== CACHE HELPERS ====================

// Cache failures never fail a request; the listing falls through to Postgres.

func (s *catalogService) readCachedList(ctx context.Context, key string) *response.PaginatedResponse[response.PackageResponse] {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		s.log.Warn("Catalog cache read failed", zap.Error(err), zap.String("key", key))
		return nil
	}

	var cached response.PaginatedResponse[response.PackageResponse]
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		s.log.Warn("Catalog cache entry corrupt", zap.Error(err), zap.String("key", key))
		return nil
	}

	return &cached
}

func (s *catalogService) writeCachedList(ctx context.Context, key string, paginated *response.PaginatedResponse[response.PackageResponse]) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(paginated)
	if err != nil {
		s.log.Warn("Catalog cache marshal failed", zap.Error(err))
		return
	}

	ttl := time.Duration(s.config.Redis.CacheTTL) * time.Second
	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Warn("Catalog cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func (s *catalogService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	iter := s.rdb.Scan(ctx, 0, cache.PackageListPattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Warn("Catalog cache invalidation failed",
				zap.Error(err),
				zap.String("key", iter.Val()),
			)
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("Catalog cache scan failed", zap.Error(err))
	}
}
