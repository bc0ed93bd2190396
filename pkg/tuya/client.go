package tuya

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Token validity margin: a token is treated as expired this long before the
// vendor's stated expiry so a call never races the real cutoff.
const expiryMargin = 60 * time.Second

// Client talks to the Tuya Cloud device-control API. It caches the access
// token in memory and refreshes it lazily on expiry. Concurrent callers
// arriving with an expired token may each trigger a fetch; the tokens are
// equivalent in capability, so the last write simply wins.
type Client struct {
	config     Config
	httpClient *http.Client
	now        func() time.Time

	tokenMutex  sync.RWMutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Tuya Cloud API client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// EnsureToken returns a valid access token, fetching a new one if the cached
// token is missing or expired.
func (c *Client) EnsureToken(ctx context.Context) (string, error) {
	c.tokenMutex.RLock()
	if c.accessToken != "" && c.now().Before(c.tokenExpiry) {
		token := c.accessToken
		c.tokenMutex.RUnlock()
		return token, nil
	}
	c.tokenMutex.RUnlock()

	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	// Double-check after acquiring the write lock
	if c.accessToken != "" && c.now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.accessToken = token
	c.tokenExpiry = c.now().Add(time.Duration(expiresIn)*time.Second - expiryMargin)

	log.Debug().Time("expires_at", c.tokenExpiry).Msg("Tuya access token refreshed")
	return token, nil
}

// fetchToken performs the token grant request.
func (c *Client) fetchToken(ctx context.Context) (token string, expiresIn int64, err error) {
	if c.config.ClientID == "" || c.config.ClientSecret == "" {
		return "", 0, ErrMissingCredentials
	}

	url := fmt.Sprintf("%s/v1.0/token?grant_type=1", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token request: %w", err)
	}

	t := strconv.FormatInt(c.now().UnixMilli(), 10)
	req.Header.Set("client_id", c.config.ClientID)
	req.Header.Set("t", t)
	req.Header.Set("sign", Sign(c.config.ClientID, c.config.ClientSecret, t, ""))
	req.Header.Set("sign_method", "HMAC-SHA256")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrTokenFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to read response: %w", ErrTokenFetch, err)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", 0, fmt.Errorf("%w: failed to parse response: %w", ErrTokenFetch, err)
	}

	if !tokenResp.Success || tokenResp.Result.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: %w", ErrTokenFetch,
			&APIError{Code: tokenResp.Code, Msg: tokenResp.Msg})
	}

	return tokenResp.Result.AccessToken, tokenResp.Result.ExpireTime, nil
}

// SendCommands sends device commands to the vendor and returns the vendor's
// success flag. A non-success reply comes back as an *APIError.
func (c *Client) SendCommands(ctx context.Context, deviceID string, commands []Command) (bool, error) {
	token, err := c.EnsureToken(ctx)
	if err != nil {
		return false, err
	}

	reqBody, err := json.Marshal(map[string]any{"commands": commands})
	if err != nil {
		return false, fmt.Errorf("failed to encode commands: %w", err)
	}

	url := fmt.Sprintf("%s/v1.0/iot-03/devices/%s/commands", c.config.BaseURL, deviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return false, fmt.Errorf("failed to create command request: %w", err)
	}

	t := strconv.FormatInt(c.now().UnixMilli(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("client_id", c.config.ClientID)
	req.Header.Set("access_token", token)
	req.Header.Set("t", t)
	req.Header.Set("sign", Sign(c.config.ClientID, c.config.ClientSecret, t, token))
	req.Header.Set("sign_method", "HMAC-SHA256")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send commands: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read command response: %w", err)
	}

	var cmdResp commandResponse
	if err := json.Unmarshal(body, &cmdResp); err != nil {
		return false, fmt.Errorf("failed to parse command response: %w", err)
	}

	if !cmdResp.Success {
		return false, &APIError{Code: cmdResp.Code, Msg: cmdResp.Msg}
	}

	return true, nil
}
