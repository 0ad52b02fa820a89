// Package provisioning talks to the account provisioning service (MS Login).
package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bff_create_account/internal/account"
	"bff_create_account/internal/common"
	"bff_create_account/internal/config"
)

const (
	msgCreateAdminFailed = "Erro ao criar conta de administrador"
	msgCreateUserFailed  = "Erro ao criar conta de usuário"

	createAdminPath = "/create-admin-account"
	createUserPath  = "/create-user-account"
)

// ErrNotCreated is the cause when the service answers 2xx with success=false.
var ErrNotCreated = errors.New("provisioning service reported success=false")

// envelope is the response body of both provisioning endpoints.
type envelope struct {
	Success *bool `json:"success"`
}

// Client implements account.Gateway over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ account.Gateway = (*Client)(nil)

// NewClient creates a provisioning client from the application configuration.
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.ProvisioningTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewClientWithHTTP(cfg.LoginBaseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client on a caller supplied *http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// CreateAdminAccount posts the full payload to {base}/create-admin-account.
func (c *Client) CreateAdminAccount(ctx context.Context, req account.CreateAdminAccountRequest) (bool, error) {
	if err := c.post(ctx, c.baseURL+createAdminPath, req); err != nil {
		return false, common.Wrap(msgCreateAdminFailed, err)
	}
	return true, nil
}

// CreateUserAccount posts the payload to {base}/create-user-account?hash=<hash>.
func (c *Client) CreateUserAccount(ctx context.Context, req account.CreateUserAccountRequest) (bool, error) {
	endpoint := c.baseURL + createUserPath + "?" + url.Values{"hash": []string{req.Hash}}.Encode()
	if err := c.post(ctx, endpoint, req); err != nil {
		return false, common.Wrap(msgCreateUserFailed, err)
	}
	return true, nil
}

// post sends body as JSON and succeeds only on a 2xx answer whose envelope says success=true.
func (c *Client) post(ctx context.Context, endpoint string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("provisioning: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("provisioning: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provisioning: request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("provisioning: read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("provisioning: unexpected status %d", res.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("provisioning: decode response: %w", err)
	}
	if env.Success == nil {
		return errors.New("provisioning: response has no success flag")
	}
	if !*env.Success {
		return ErrNotCreated
	}
	return nil
}
