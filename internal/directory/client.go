package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
)

// ErrNotFound indicates no directory record exists for the email.
var ErrNotFound = errors.New("directory: user not found")

// ErrUnavailable indicates the directory could not be reached or answered
// with an unexpected status.
var ErrUnavailable = errors.New("directory: unavailable")

// Client looks up credential records in the user directory over its
// internal-only channel.
type Client interface {
	LookupByEmail(ctx context.Context, email string) (*domain.CredentialRecord, error)
	Ping(ctx context.Context) error
}

type httpClient struct {
	baseURL      string
	sharedSecret string
	client       *http.Client
}

// NewHTTPClient builds a directory client from configuration.
func NewHTTPClient(cfg config.DirectoryConfig) Client {
	return &httpClient{
		baseURL:      cfg.BaseURL,
		sharedSecret: cfg.SharedSecret,
		client:       &http.Client{Timeout: cfg.Timeout()},
	}
}

type lookupRequest struct {
	Email string `json:"email"`
}

// LookupByEmail fetches the full credential record, password included. The
// request carries the shared secret so the directory can reject callers that
// are not the auth service.
func (c *httpClient) LookupByEmail(ctx context.Context, email string) (*domain.CredentialRecord, error) {
	body, err := json.Marshal(lookupRequest{Email: email})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/users/by-email", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sharedSecret != "" {
		req.Header.Set("X-Internal-Token", c.sharedSecret)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var record domain.CredentialRecord
		if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
		return &record, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}

// Ping checks directory reachability via its health endpoint.
func (c *httpClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("directory health returned status %d", resp.StatusCode)
	}
	return nil
}
