// Package authority is the HTTP client for the dashboard backend that
// owns user accounts, verification tokens, and credential validation.
// This service keeps no durable state of its own; every authoritative
// answer comes from here.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"dashboard-user-import/internal/domain"
)

// Client calls the authority endpoints. Idempotent lookups (existence
// check, credential validation) are retried with exponential backoff on
// transport errors and 5xx responses; token verification and user commit
// are sent exactly once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	retryBase  time.Duration
}

// NewClient creates a new authority Client.
func NewClient(baseURL string, timeout time.Duration, maxRetries int, retryBase time.Duration) *Client {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: uint64(maxRetries),
		retryBase:  retryBase,
	}
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

type tokenResponse struct {
	Handle string `json:"handle"`
}

type verifyRequest struct {
	Code string `json:"code"`
}

type verifyResponse struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

type commitResponse struct {
	Reason string `json:"reason"`
}

// UserExists reports whether a username is already taken on the dashboard.
func (c *Client) UserExists(ctx context.Context, username string) (bool, error) {
	path := "/api/users/" + url.PathEscape(username) + "/exists"
	var out existsResponse
	if err := c.getWithRetry(ctx, path, &out); err != nil {
		return false, fmt.Errorf("existence check for %q: %w", username, err)
	}
	return out.Exists, nil
}

// GenerateToken asks the authority to mint (or re-mint) a verification
// token for the username. The raw token value is logged server-side only;
// the returned handle is an opaque reference used at commit time.
func (c *Client) GenerateToken(ctx context.Context, username string) (string, error) {
	path := "/api/users/" + url.PathEscape(username) + "/verification-token"
	var out tokenResponse
	status, err := c.doJSON(ctx, http.MethodPost, path, nil, &out)
	if err != nil {
		return "", fmt.Errorf("generate verification token for %q: %w", username, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", fmt.Errorf("generate verification token for %q: unexpected status %d", username, status)
	}
	return out.Handle, nil
}

// VerifyToken submits the operator-entered value. A rejected value is not
// an error: it returns ok=false with the authority's reason.
func (c *Client) VerifyToken(ctx context.Context, username, code string) (bool, string, error) {
	path := "/api/users/" + url.PathEscape(username) + "/verification-token/verify"
	var out verifyResponse
	status, err := c.doJSON(ctx, http.MethodPost, path, verifyRequest{Code: code}, &out)
	if err != nil {
		return false, "", fmt.Errorf("verify token for %q: %w", username, err)
	}
	if status != http.StatusOK {
		return false, "", fmt.Errorf("verify token for %q: unexpected status %d", username, status)
	}
	return out.Verified, out.Reason, nil
}

// ValidatePortainer checks one Portainer instance's credentials.
func (c *Client) ValidatePortainer(ctx context.Context, cred domain.PortainerCredential) (bool, string, error) {
	return c.validate(ctx, "/api/validate/portainer", cred)
}

// ValidateDockerHub checks the Docker Hub username/token pair.
func (c *Client) ValidateDockerHub(ctx context.Context, cred domain.DockerHubCredential) (bool, string, error) {
	return c.validate(ctx, "/api/validate/dockerhub", cred)
}

// ValidateDiscord checks one Discord webhook.
func (c *Client) ValidateDiscord(ctx context.Context, hook domain.DiscordWebhook) (bool, string, error) {
	return c.validate(ctx, "/api/validate/discord", hook)
}

// CommitUser creates the user on the dashboard. Duplicate and rejected
// outcomes are verdicts, not transport errors.
func (c *Client) CommitUser(ctx context.Context, req domain.CommitRequest) (domain.CommitOutcome, error) {
	var out commitResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/api/users", req, &out)
	if err != nil {
		return domain.CommitOutcome{}, fmt.Errorf("commit user %q: %w", req.Username, err)
	}

	switch status {
	case http.StatusCreated, http.StatusOK:
		return domain.CommitOutcome{Status: domain.CommitCreated}, nil
	case http.StatusConflict:
		reason := out.Reason
		if reason == "" {
			reason = "user already exists"
		}
		return domain.CommitOutcome{Status: domain.CommitAlreadyExists, Reason: reason}, nil
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		reason := out.Reason
		if reason == "" {
			reason = fmt.Sprintf("rejected with status %d", status)
		}
		return domain.CommitOutcome{Status: domain.CommitFailed, Reason: reason}, nil
	default:
		return domain.CommitOutcome{}, fmt.Errorf("commit user %q: unexpected status %d", req.Username, status)
	}
}

// Ping checks that the authority is reachable. Used by the health
// endpoints; a single attempt, no retries.
func (c *Client) Ping(ctx context.Context) error {
	status, err := c.doJSON(ctx, http.MethodGet, "/api/status", nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("authority returned status %d", status)
	}
	return nil
}

func (c *Client) validate(ctx context.Context, path string, payload any) (bool, string, error) {
	var out validateResponse
	err := c.retry(ctx, func() error {
		status, err := c.doJSON(ctx, http.MethodPost, path, payload, &out)
		if err != nil {
			return err
		}
		if status >= 500 {
			return fmt.Errorf("authority returned status %d", status)
		}
		if status != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("authority returned status %d", status))
		}
		return nil
	})
	if err != nil {
		return false, "", err
	}
	return out.Valid, out.Reason, nil
}

func (c *Client) getWithRetry(ctx context.Context, path string, out any) error {
	return c.retry(ctx, func() error {
		status, err := c.doJSON(ctx, http.MethodGet, path, nil, out)
		if err != nil {
			return err
		}
		if status >= 500 {
			return fmt.Errorf("authority returned status %d", status)
		}
		if status != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("authority returned status %d", status))
		}
		return nil
	})
}

func (c *Client) retry(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryBase
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx))
}

// doJSON performs one request and decodes the response body into out when
// a body is present. It returns the HTTP status; non-2xx statuses are not
// errors at this level.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call authority: %w", err)
	}
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("read response: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return resp.StatusCode, fmt.Errorf("decode response: %w", err)
			}
		}
	}
	return resp.StatusCode, nil
}
