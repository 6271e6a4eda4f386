package api

import (
	"context"
	"net/http"

	"studybuddy-web-go/internal/models"
)

// AuthStatus is the upstream's answer to a session check.
type AuthStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user"`
}

type RegisterInput struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	GradeLevel *string `json:"grade_level"`
}

func (c *Client) CheckAuth(ctx context.Context, auth *Auth) (AuthStatus, error) {
	var status AuthStatus
	err := c.do(ctx, http.MethodGet, "/api/auth/check-auth", auth, nil, nil, &status)
	return status, err
}

func (c *Client) Login(ctx context.Context, auth *Auth, username, password string) (*models.User, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", auth, nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Register(ctx context.Context, auth *Auth, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", auth, nil, input, nil)
}

func (c *Client) Logout(ctx context.Context, auth *Auth) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", auth, nil, nil, nil)
}
