package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ProviderError is a failure reported by the identity provider; the
// status code is forwarded to the caller.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: %s (status %d)", e.Message, e.StatusCode)
}

// TokenResponse is the provider's token payload, forwarded verbatim.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Client proxies password, refresh and logout flows to the external
// identity provider. The backend holds no password state of its own.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// PasswordGrant exchanges email/password for a token pair.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	return c.tokenRequest(ctx, "password", body)
}

// RefreshGrant exchanges a refresh token for a new token pair.
func (c *Client) RefreshGrant(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}
	return c.tokenRequest(ctx, "refresh_token", body)
}

func (c *Client) tokenRequest(ctx context.Context, grantType string, body map[string]string) (*TokenResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/token?grant_type=%s", c.baseURL, url.QueryEscape(grantType))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providerError(resp)
	}

	var tokens TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Revoke invalidates the caller's session at the provider.
func (c *Client) Revoke(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return providerError(resp)
	}
	return nil
}

var oauthProviders = map[string]bool{"google": true, "azure": true}

// AuthorizeURL builds the provider's OAuth authorize URL; the frontend
// performs the actual redirect dance.
func (c *Client) AuthorizeURL(provider, redirectTo string) (string, error) {
	if !oauthProviders[provider] {
		return "", fmt.Errorf("unsupported oauth provider %q", provider)
	}
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return fmt.Sprintf("%s/authorize?%s", c.baseURL, q.Encode()), nil
}

func providerError(resp *http.Response) error {
	var parsed struct {
		Message          string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &parsed)

	msg := parsed.Message
	if msg == "" {
		msg = parsed.ErrorDescription
	}
	if msg == "" {
		msg = "request rejected"
	}
	return &ProviderError{StatusCode: resp.StatusCode, Message: msg}
}
