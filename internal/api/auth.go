package api

import (
	"context"
	"net/http"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

type LoginRequest struct {
	UserID int64  `json:"userId"`
	PIN    string `json:"pin"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login exchanges a cashier id and 6-digit PIN for a bearer token. The caller
// stores the result in the session; this client only transports it.
func (c *Client) Login(ctx context.Context, userID int64, pin string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{UserID: userID, PIN: pin}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the server session. Local state is cleared by the caller
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}
