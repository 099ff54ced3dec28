// Package api is the client for mediavault's own HTTP surface, used by
// the upload command to log in, fetch an upload authorization and submit
// the media record once the CDN transfer finishes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/dto"
	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/model"
)

type Config struct {
	BaseURL string `yaml:"base_url"`
	Timeout int64  `yaml:"timeout_in_ms"`
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	token      string
}

func New(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
	}
}

// Login exchanges credentials for a session token kept on the client and
// attached to every later request.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login",
		dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}

	c.token = resp.Token

	return nil
}

func (c *Client) FetchUploadAuthorization(ctx context.Context) (entity.UploadAuthorization, error) {
	var resp dto.UploadAuthResponse
	if err := c.do(ctx, http.MethodGet, "/upload-authorization", nil, &resp); err != nil {
		return entity.UploadAuthorization{}, err
	}

	return entity.UploadAuthorization{
		Signature: resp.AuthParams.Signature,
		Expire:    resp.AuthParams.Expire,
		Token:     resp.AuthParams.Token,
		PublicKey: resp.PublicKey,
	}, nil
}

func (c *Client) CreateMedia(ctx context.Context, req dto.CreateMediaRequest) (*model.Media, error) {
	var created model.Media
	if err := c.do(ctx, http.MethodPost, "/media", req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerr.Wrap(domainerr.KindNetwork, "request failed: network error", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return domainerr.New(domainerr.KindServer,
			fmt.Sprintf("request failed with status %d", resp.StatusCode))
	}

	return domainerr.New(domainerr.Kind(body.Kind), body.Error)
}
