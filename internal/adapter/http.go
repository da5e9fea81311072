package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath    = "/login"
	registerPath = "/register"
	chatPath     = "/chat"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and bounds every
// request with adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(creds).
		SetResult(&result).
		Post(loginPath)
	if err = h.check(resp, err, loginPath); err != nil {
		return models.LoginResponse{}, err
	}

	if result.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login response without token", ErrMalformedResponse)
	}

	return result, nil
}

// Register implements [ServerAdapter]. The body of a successful reply is
// decoded when present; an empty or foreign body is not an error.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(creds).
		SetResult(&result).
		Post(registerPath)
	if err = h.check(resp, err, registerPath); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// Chat implements [ServerAdapter].
func (h *httpServerAdapter) Chat(ctx context.Context, token string, req models.ChatRequest) (models.ChatResponse, error) {
	var result models.ChatResponse

	resp, err := h.authedRequest(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post(chatPath)
	if err = h.check(resp, err, chatPath); err != nil {
		return models.ChatResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.jsonRequest(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check folds a resty outcome into the adapter's error taxonomy. resty
// reports undecodable success bodies through err as well; those carry a
// status code, network failures do not.
func (h *httpServerAdapter) check(resp *resty.Response, err error, path string) error {
	if err != nil {
		if resp != nil && resp.StatusCode() != 0 {
			if resp.IsError() {
				return mapHTTPError(resp)
			}
			h.logger.Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("undecodable response")
			return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
		}
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %s: %w", ErrTransport, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Str("path", path).Int("status", resp.StatusCode()).Msg("service returned an error")
		return err
	}

	return nil
}
