package response

import "time"

type AuthResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Token     string    `json:"-"` // carried by the session cookie, never in the body
	ExpiresAt time.Time `json:"expires_at"`
}
