// Package coingecko implements a MetadataFetcher backed by the CoinGecko API.
package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

const (
	// DefaultBaseURL is the public CoinGecko API.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	// APIKeyHeader carries a CoinGecko demo API key.
	APIKeyHeader = "x-cg-demo-api-key"

	defaultTimeout = 30 * time.Second
)

var _ sdk.MetadataFetcher = (*Client)(nil)

// Client fetches coin metadata from CoinGecko.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*resty.Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// NewClient creates a new CoinGecko client. An empty apiKey uses the unauthenticated API.
func NewClient(apiKey string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		rc.SetHeader(APIKeyHeader, apiKey)
	}
	for _, opt := range opts {
		opt(rc)
	}

	return &Client{http: rc}
}

// FetchCoin fetches the coin with the given CoinGecko id. An unknown id is reported as
// sdk.ErrExternalIDNotFound.
func (c *Client) FetchCoin(ctx context.Context, id string) (types.CoinMetadata, error) {
	var coin types.CoinMetadata
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"localization":   "false",
			"tickers":        "false",
			"market_data":    "false",
			"community_data": "false",
			"developer_data": "false",
		}).
		SetResult(&coin).
		Get("/coins/" + url.PathEscape(id))
	if err != nil {
		return types.CoinMetadata{}, fmt.Errorf("failed to fetch coin %s: %w", id, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return types.CoinMetadata{}, fmt.Errorf("coin %s: %w", id, sdk.ErrExternalIDNotFound)
	case !resp.IsSuccess():
		return types.CoinMetadata{}, fmt.Errorf("CoinGecko API returned status %d for coin %s", resp.StatusCode(), id)
	}

	return coin, nil
}
