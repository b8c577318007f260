package sportsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

// AccountGateway serves the /users endpoints.
type AccountGateway struct {
	client *Client
}

func NewAccountGateway(client *Client) *AccountGateway {
	return &AccountGateway{client: client}
}

func (g *AccountGateway) Login(ctx context.Context, creds user.Credentials) (user.Session, error) {
	body := map[string]string{"username": creds.Username, "password": creds.Password}

	var payload userDTO
	err := g.client.sendJSON(ctx, http.MethodPost, "/users/login", "", body, &payload)
	switch {
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrInvalidInput):
		return user.Session{}, fmt.Errorf("%w: invalid username or password", usecase.ErrUnauthorized)
	case err != nil:
		return user.Session{}, fmt.Errorf("login: %w", err)
	}
	return payload.toSession(), nil
}

// Register creates an account. The backend answers 400 when the username is taken.
func (g *AccountGateway) Register(ctx context.Context, reg user.Registration) error {
	body := map[string]string{"username": reg.Username, "password": reg.Password, "email": reg.Email}

	err := g.client.sendJSON(ctx, http.MethodPost, "/users/register", "", body, nil)
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return fmt.Errorf("%w: user %q already exists", usecase.ErrConflict, reg.Username)
	case err != nil:
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (g *AccountGateway) GetProfile(ctx context.Context, userID string) (user.Profile, error) {
	var payload userDTO
	if err := g.client.getJSON(ctx, "/users/show/"+url.PathEscape(userID), nil, &payload); err != nil {
		return user.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return payload.toProfile(), nil
}

func (g *AccountGateway) UpdateProfile(ctx context.Context, token, userID string, update user.ProfileUpdate) (user.Profile, error) {
	body := map[string]string{"username": update.Username, "email": update.Email}

	var payload userDTO
	if err := g.client.sendJSON(ctx, http.MethodPut, "/users/update/"+url.PathEscape(userID), token, body, &payload); err != nil {
		return user.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return payload.toProfile(), nil
}
