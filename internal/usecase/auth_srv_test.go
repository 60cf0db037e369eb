package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testAdmin(t *testing.T, password string) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "operator",
		Email:        "operator@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func newAuthFixture(t *testing.T, users *mockUserRepo, sessions *mockSessionRepo) AuthService {
	repo := &repository.Repository{User: users, Session: sessions}
	return NewAuthService(repo, testConfig(), zaptest.NewLogger(t))
}

func TestLoginOpensSession(t *testing.T) {
	user := testAdmin(t, "correct-horse-1")
	users := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return user, nil
		},
	}
	sessions := &mockSessionRepo{}
	srv := newAuthFixture(t, users, sessions)

	auth, err := srv.Login(context.Background(), &request.LoginRequest{
		Username: "operator",
		Password: "correct-horse-1",
	})

	require.NoError(t, err)
	require.Len(t, sessions.Created, 1)
	assert.Equal(t, user.ID, sessions.Created[0].UserID)
	assert.Equal(t, sessions.Created[0].Token.String(), auth.Token)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), auth.ExpiresAt, time.Minute)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := testAdmin(t, "correct-horse-1")
	users := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return user, nil
		},
	}
	sessions := &mockSessionRepo{}
	srv := newAuthFixture(t, users, sessions)

	_, err := srv.Login(context.Background(), &request.LoginRequest{
		Username: "operator",
		Password: "wrong-password-1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
	assert.Empty(t, sessions.Created)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	user := testAdmin(t, "correct-horse-1")
	user.IsActive = false
	users := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return user, nil
		},
	}
	srv := newAuthFixture(t, users, &mockSessionRepo{})

	_, err := srv.Login(context.Background(), &request.LoginRequest{
		Username: "operator",
		Password: "correct-horse-1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestChangePasswordRotatesHash(t *testing.T) {
	user := testAdmin(t, "correct-horse-1")
	users := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
	}
	srv := newAuthFixture(t, users, &mockSessionRepo{})

	err := srv.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "correct-horse-1",
		NewPassword:     "battery-staple-2",
	})

	require.NoError(t, err)
	require.Len(t, users.Updated, 1)
	assert.True(t, utils.CheckPasswordHash("battery-staple-2", users.Updated[0].PasswordHash))
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	user := testAdmin(t, "correct-horse-1")
	users := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
	}
	srv := newAuthFixture(t, users, &mockSessionRepo{})

	err := srv.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "wrong-password-1",
		NewPassword:     "battery-staple-2",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
	assert.Empty(t, users.Updated)
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := &mockSessionRepo{}
	srv := newAuthFixture(t, &mockUserRepo{}, sessions)

	require.NoError(t, srv.Logout(context.Background(), "token-1"))
	assert.Equal(t, []string{"token-1"}, sessions.Deleted)
}
