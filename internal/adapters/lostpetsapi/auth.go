package lostpetsapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lost-pets-catalog/internal/platform/metrics"
	"lost-pets-catalog/internal/ports/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name            string `json:"name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
}

type userWire struct {
	ID       flexID `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type registerResponse struct {
	AuthToken string   `json:"auth_token"`
	Message   string   `json:"message"`
	User      userWire `json:"user"`
}

// Login: POST /auth/login (público).
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	started := time.Now()

	var out loginResponse
	err := mapAuthError(c.http.DoJSON(ctx, http.MethodPost, "/auth/login", nil,
		loginRequest{Email: strings.TrimSpace(email), Password: password}, &out))
	if err == nil && strings.TrimSpace(out.Token) == "" {
		err = fmt.Errorf("%w: login response without token", ErrUpstream)
	}

	metrics.ObserveUpstream("login", outcome(err), started)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Token), nil
}

// Register: POST /users/ (público). El nombre completo se parte en
// name (primera palabra) y last_name (el resto).
func (c *Client) Register(ctx context.Context, r auth.Registration) (auth.Registered, error) {
	started := time.Now()

	first, last := splitName(r.Name)
	req := registerRequest{
		Name:            first,
		LastName:        last,
		Email:           strings.TrimSpace(r.Email),
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Phone:           strings.TrimSpace(r.Phone),
	}

	var out registerResponse
	err := mapAuthError(c.http.DoJSON(ctx, http.MethodPost, "/users/", nil, req, &out))
	if err == nil && strings.TrimSpace(out.AuthToken) == "" {
		err = fmt.Errorf("%w: register response without auth_token", ErrUpstream)
	}

	metrics.ObserveUpstream("register", outcome(err), started)
	if err != nil {
		return auth.Registered{}, err
	}

	return auth.Registered{
		Token: strings.TrimSpace(out.AuthToken),
		Account: auth.Account{
			ID:       string(out.User.ID),
			Name:     strings.TrimSpace(out.User.Name),
			LastName: strings.TrimSpace(out.User.LastName),
			Email:    strings.TrimSpace(out.User.Email),
			Phone:    strings.TrimSpace(out.User.Phone),
		},
	}, nil
}

func splitName(full string) (first, rest string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
