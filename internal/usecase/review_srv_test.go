package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newReviewFixture(t *testing.T, reviews *mockReviewRepo, feedURL string) ReviewService {
	t.Helper()

	repo := &repository.Repository{Review: reviews}
	config := testConfig()
	config.Reviews.FeedURL = feedURL

	return NewReviewService(repo, config, zaptest.NewLogger(t))
}

func TestSyncReviewsCreatesAndUpdates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "ext-1", "author": "Maria K", "rating": 5, "text": "Wonderful trip"},
			{"id": "ext-2", "author": "John D", "rating": 4, "text": "Great guides"},
			{"id": "", "author": "Nobody", "rating": 3, "text": "missing id"}
		]`))
	}))
	defer server.Close()

	existing := &entity.Review{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Author:    "Maria",
		Rating:    4,
		Text:      "old text",
		Source:    entity.ReviewSourceSynced,
		SourceRef: strPtr("ext-1"),
		IsActive:  true,
	}
	reviews := &mockReviewRepo{
		FindBySourceRefFunc: func(ctx context.Context, sourceRef string) (*entity.Review, error) {
			if sourceRef == "ext-1" {
				return existing, nil
			}
			return nil, nil
		},
	}
	srv := newReviewFixture(t, reviews, server.URL)

	result, err := srv.SyncReviews(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Skipped)

	require.Len(t, reviews.Created, 1)
	created := reviews.Created[0]
	assert.Equal(t, entity.ReviewSourceSynced, created.Source)
	require.NotNil(t, created.SourceRef)
	assert.Equal(t, "ext-2", *created.SourceRef)
	assert.True(t, created.IsActive)

	require.Len(t, reviews.Updated, 1)
	assert.Equal(t, "Wonderful trip", reviews.Updated[0].Text)
	assert.Equal(t, 5, reviews.Updated[0].Rating)
}

func TestSyncReviewsWithoutFeedURL(t *testing.T) {
	srv := newReviewFixture(t, &mockReviewRepo{}, "")

	_, err := srv.SyncReviews(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestSyncReviewsFeedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	srv := newReviewFixture(t, &mockReviewRepo{}, server.URL)

	_, err := srv.SyncReviews(context.Background())

	require.Error(t, err)
}

func strPtr(s string) *string {
	return &s
}
