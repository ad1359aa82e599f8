package api

import (
	"context"

	"cofau/internal/domain"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var out domain.LoginResult
	if err := c.postJSON(ctx, "/api/auth/login", creds, &out); err != nil {
		return domain.LoginResult{}, err
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/auth/me", &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}
