// Package amadeus wraps the Amadeus self-service APIs used for live
// flight-offer searches and airport reference lookups.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/technicalerikchan/flight-mcp-server/log"
)

const (
	BaseURLTest       = "https://test.api.amadeus.com"
	BaseURLProduction = "https://api.amadeus.com"
)

// AuthToken represents the OAuth2 token response
type AuthToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Expiry      time.Time
}

// Client is the Amadeus API client
type Client struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	HTTPClient   *http.Client

	limiter *rate.Limiter

	mu    sync.Mutex
	token *AuthToken
}

// NewClient creates a new Amadeus client against the test or production host.
func NewClient(clientID, clientSecret string, isProduction bool, timeout, rps int) *Client {
	baseURL := BaseURLTest
	if isProduction {
		baseURL = BaseURLProduction
	}
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		BaseURL:      baseURL,
		HTTPClient:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:      rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Authenticate fetches a fresh token via the client-credentials grant.
func (c *Client) Authenticate(ctx context.Context) error {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.ClientID)
	data.Set("client_secret", c.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/security/oauth2/token", strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("authentication failed: %s", resp.Status)
	}

	var token AuthToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return err
	}

	// Set expiry time (subtract 10 seconds for buffer)
	token.Expiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - 10*time.Second)

	c.mu.Lock()
	c.token = &token
	c.mu.Unlock()

	return nil
}

// bearerToken returns a usable access token, re-authenticating when the
// cached one is missing or expired.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token != nil && time.Now().Before(token.Expiry) {
		return token.AccessToken, nil
	}

	if err := c.Authenticate(ctx); err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token.AccessToken, nil
}

// doRequest performs an authenticated, rate-limited GET request
func (c *Client) doRequest(ctx context.Context, endpoint string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Errorf(ctx, "Amadeus API request failed: %v", err)
		return nil, err
	}

	return resp, nil
}
