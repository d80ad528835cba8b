package api

import (
	"context"
	"net/http"

	"taskboard/internal/models"
)

type AuthPayload struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    models.Profile `json:"user"`
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthPayload, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	payload := new(AuthPayload)
	err := c.do(ctx, http.MethodPost, "/api/auth/register", body, payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*AuthPayload, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	payload := new(AuthPayload)
	err := c.do(ctx, http.MethodPost, "/api/auth/login", body, payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
