package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type mockAuthService struct {
	LoginFunc          func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	LogoutFunc         func(ctx context.Context, token string) error
	ChangePasswordFunc func(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return errors.New("not implemented")
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, req)
	}
	return errors.New("not implemented")
}

func newAuthHandler(t *testing.T, service *mockAuthService) *AuthHandler {
	t.Helper()

	config := &utils.Config{
		Session: utils.SessionConfig{CookieName: "admin_session"},
	}
	return NewAuthHandler(service, config, zaptest.NewLogger(t))
}

func TestLoginBadCredentialsAnswers401(t *testing.T) {
	handler := newAuthHandler(t, &mockAuthService{
		LoginFunc: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return nil, fmt.Errorf("unauthorized: invalid username or password")
		},
	})

	body := `{"username":"operator","password":"wrong-password-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestLoginSetsSessionCookie(t *testing.T) {
	handler := newAuthHandler(t, &mockAuthService{
		LoginFunc: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{Username: "operator", Token: "tok-1"}, nil
		},
	})

	body := `{"username":"operator","password":"correct-horse-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := rec.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "admin_session=tok-1")
	assert.Contains(t, cookie, "HttpOnly")
}
