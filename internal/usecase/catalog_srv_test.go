package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newCatalogFixture(t *testing.T, packages *mockPackageRepo, translations *mockTranslationRepo) (CatalogService, redismock.ClientMock) {
	t.Helper()

	rdb, mock := redismock.NewClientMock()
	repo := &repository.Repository{
		Package:     packages,
		Translation: translations,
	}
	config := testConfig()
	config.Redis.CacheTTL = 60

	translation := NewTranslationService(repo, zaptest.NewLogger(t))
	srv := NewCatalogService(repo, translation, rdb, config, zaptest.NewLogger(t))
	return srv, mock
}

func TestListPackagesPopulatesCacheOnMiss(t *testing.T) {
	pkg := testTourPackage()
	packages := &mockPackageRepo{
		FindActiveFunc: func(ctx context.Context, packageType string, limit, offset int) ([]*entity.TourPackage, error) {
			assert.Equal(t, "", packageType)
			assert.Equal(t, 12, limit)
			assert.Equal(t, 0, offset)
			return []*entity.TourPackage{pkg}, nil
		},
		CountActiveFunc: func(ctx context.Context, packageType string) (int64, error) {
			return 1, nil
		},
	}
	srv, mock := newCatalogFixture(t, packages, &mockTranslationRepo{})

	key := cache.PackageListKey("", "", 1, 12)
	expected := response.NewPaginatedResponse(
		[]response.PackageResponse{response.PackageToResponse(pkg)}, 1, 12, 1,
	)
	raw, err := json.Marshal(expected)
	require.NoError(t, err)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, raw, 60*time.Second).SetVal("OK")

	result, err := srv.ListPackages(context.Background(), "", "", 1, 12)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, pkg.Slug, result.Data[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPackagesServesFromCache(t *testing.T) {
	dbHits := 0
	packages := &mockPackageRepo{
		FindActiveFunc: func(ctx context.Context, packageType string, limit, offset int) ([]*entity.TourPackage, error) {
			dbHits++
			return nil, nil
		},
	}
	srv, mock := newCatalogFixture(t, packages, &mockTranslationRepo{})

	cached := response.NewPaginatedResponse(
		[]response.PackageResponse{{ID: uuid.NewString(), Slug: "cached-safari"}}, 1, 12, 1,
	)
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	key := cache.PackageListKey("", "", 1, 12)
	mock.ExpectGet(key).SetVal(string(raw))

	result, err := srv.ListPackages(context.Background(), "", "", 1, 12)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "cached-safari", result.Data[0].Slug)
	assert.Zero(t, dbHits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPackagesRejectsUnknownType(t *testing.T) {
	srv, _ := newCatalogFixture(t, &mockPackageRepo{}, &mockTranslationRepo{})

	_, err := srv.ListPackages(context.Background(), "CRUISE", "", 1, 12)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestDeletePackageInvalidatesListCache(t *testing.T) {
	deleted := false
	packages := &mockPackageRepo{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	srv, mock := newCatalogFixture(t, packages, &mockTranslationRepo{})

	staleKey := cache.PackageListKey("SAFARI", "en", 1, 12)
	mock.ExpectScan(0, cache.PackageListPattern, 100).SetVal([]string{staleKey}, 0)
	mock.ExpectDel(staleKey).SetVal(1)

	err := srv.DeletePackage(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPackageBySlugHidesInactive(t *testing.T) {
	pkg := testTourPackage()
	pkg.IsActive = false
	packages := &mockPackageRepo{
		FindBySlugFunc: func(ctx context.Context, slug string) (*entity.TourPackage, error) {
			return pkg, nil
		},
	}
	srv, _ := newCatalogFixture(t, packages, &mockTranslationRepo{})

	_, err := srv.GetPackageBySlug(context.Background(), pkg.Slug, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreatePackageSlugifiesName(t *testing.T) {
	var created *entity.TourPackage
	packages := &mockPackageRepo{
		CreateFunc: func(ctx context.Context, pkg *entity.TourPackage) error {
			created = pkg
			return nil
		},
	}
	srv, mock := newCatalogFixture(t, packages, &mockTranslationRepo{})

	mock.ExpectScan(0, cache.PackageListPattern, 100).SetVal(nil, 0)

	req := &request.PackageRequest{
		Type:         "MOUNTAIN",
		Name:         "Kilimanjaro Machame Route",
		Price:        1900,
		DurationDays: 7,
	}
	_, err := srv.CreatePackage(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "kilimanjaro-machame-route", created.Slug)
	assert.True(t, created.IsActive)
	assert.Equal(t, "USD", created.Currency)
}
