// Package hint fetches hint text from the off-chain hint service.
package hint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodySize    = 64 << 10
)

// ErrNotFound is returned when the service has no hint for the index.
var ErrNotFound = errors.New("hint not found")

type response struct {
	Hint string `json:"hint"`
}

// Client calls GET <endpoint>?index=<n>&player=<address> and expects
// {"hint": "..."} back.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout bounds every hint request.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.http.Timeout = d
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// NewClient creates a hint client for endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid hint endpoint %q", endpoint)
	}

	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchHint returns the hint text published under index for player.
func (c *Client) FetchHint(ctx context.Context, index *big.Int, player common.Address) (string, error) {
	if index == nil || index.Sign() < 0 {
		return "", fmt.Errorf("invalid hint index")
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("index", index.String())
	q.Set("player", player.Hex())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch hint: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: index %s", ErrNotFound, index)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("hint service returned status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode hint: %w", err)
	}
	text := strings.TrimSpace(body.Hint)
	if text == "" {
		return "", fmt.Errorf("%w: index %s", ErrNotFound, index)
	}

	c.logger.Debug("Fetched hint", zap.String("index", index.String()))
	return text, nil
}
