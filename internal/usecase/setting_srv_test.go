package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newSettingFixture(t *testing.T, settings *mockSettingRepo) SettingService {
	t.Helper()

	repo := &repository.Repository{Setting: settings}
	return NewSettingService(repo, zaptest.NewLogger(t))
}

func TestGetGalleryReadsStoredList(t *testing.T) {
	settings := &mockSettingRepo{
		GetFunc: func(ctx context.Context, key string) (*entity.Setting, error) {
			assert.Equal(t, entity.SettingKeyGalleryImages, key)
			return &entity.Setting{
				Key:       key,
				Value:     `["https://img.example.com/a.jpg","https://img.example.com/b.jpg"]`,
				UpdatedAt: time.Now(),
			}, nil
		},
	}
	srv := newSettingFixture(t, settings)

	gallery, err := srv.GetGallery(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"}, gallery.Images)
}

func TestGetGalleryMissingKeyServesEmptyList(t *testing.T) {
	srv := newSettingFixture(t, &mockSettingRepo{})

	gallery, err := srv.GetGallery(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gallery.Images)
	assert.NotNil(t, gallery.Images)
}

func TestGetVideosMalformedValueServesEmptyList(t *testing.T) {
	settings := &mockSettingRepo{
		GetFunc: func(ctx context.Context, key string) (*entity.Setting, error) {
			return &entity.Setting{Key: key, Value: "not json"}, nil
		},
	}
	srv := newSettingFixture(t, settings)

	videos, err := srv.GetVideos(context.Background())

	require.NoError(t, err)
	assert.Empty(t, videos.Links)
}

func TestUpdateGalleryStoresJSONArray(t *testing.T) {
	settings := &mockSettingRepo{}
	srv := newSettingFixture(t, settings)

	_, err := srv.UpdateGallery(context.Background(), &request.UpdateGalleryRequest{
		Images: []string{"https://img.example.com/a.jpg"},
	})

	require.NoError(t, err)
	require.Len(t, settings.Upserted, 1)
	assert.Equal(t, entity.SettingKeyGalleryImages, settings.Upserted[0].Key)
	assert.JSONEq(t, `["https://img.example.com/a.jpg"]`, settings.Upserted[0].Value)
}
