package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

type usersEnvelope struct {
	Users []domain.User `json:"users"`
}

type userEnvelope struct {
	User *domain.User `json:"user"`
}

func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var env usersEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *Client) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users", u, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

// UpdateUser sends a partial update; update may be domain.UpdateUser or
// domain.SetPin, matching the backend's single update endpoint.
func (c *Client) UpdateUser(ctx context.Context, id int64, update any) (*domain.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), update, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}
