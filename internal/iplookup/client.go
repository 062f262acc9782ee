// Package iplookup resolves IP addresses to geolocation data via the
// ip-api.com JSON endpoint. It is a thin single-shot fetch: failures are
// surfaced to the caller and never retried.
package iplookup

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/devkit/internal/common"
)

// DefaultEndpoint is the public ip-api.com JSON API base URL
const DefaultEndpoint = "http://ip-api.com/json"

// DefaultTimeout bounds a single lookup request
const DefaultTimeout = 10 * time.Second

// GeoInfo is the geolocation record returned for one query
type GeoInfo struct {
	Status      string  `json:"status"`
	Message     string  `json:"message,omitempty"`
	Query       string  `json:"query"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
}

// Client performs IP geolocation lookups
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     zerolog.Logger
}

// ClientBuilder provides a fluent interface for creating Client
type ClientBuilder struct {
	endpoint string
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewClientBuilder creates a new builder with default endpoint and timeout
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		logger:   zerolog.Nop(),
	}
}

// WithEndpoint sets the API base URL
func (b *ClientBuilder) WithEndpoint(endpoint string) *ClientBuilder {
	b.endpoint = endpoint
	return b
}

// WithTimeout sets the per-request timeout
func (b *ClientBuilder) WithTimeout(timeout time.Duration) *ClientBuilder {
	b.timeout = timeout
	return b
}

// WithLogger sets the logger instance
func (b *ClientBuilder) WithLogger(logger zerolog.Logger) *ClientBuilder {
	b.logger = logger
	return b
}

// Build creates a new Client instance
func (b *ClientBuilder) Build() (*Client, error) {
	if _, err := url.Parse(b.endpoint); err != nil || b.endpoint == "" {
		return nil, common.NewValidationError("endpoint", b.endpoint, "must be a valid URL")
	}
	if b.timeout <= 0 {
		return nil, common.NewValidationError("timeout", b.timeout, "must be positive")
	}

	return &Client{
		httpClient: &http.Client{Timeout: b.timeout},
		endpoint:   strings.TrimRight(b.endpoint, "/"),
		logger:     b.logger.With().Str("component", "IPLookupClient").Logger(),
	}, nil
}

// Lookup fetches geolocation data for query, which may be an IPv4/IPv6
// address or hostname. An empty query resolves the caller's own address.
func (c *Client) Lookup(ctx context.Context, query string) (*GeoInfo, error) {
	requestURL := c.endpoint
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		requestURL += "/" + url.PathEscape(trimmed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, common.WrapError(err, "failed to build lookup request")
	}

	c.logger.Debug().Str("url", requestURL).Msg("Requesting IP geolocation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.WrapError(common.ErrNetworkFailure, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewError("lookup returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, common.WrapError(err, "failed to read lookup response")
	}

	var info GeoInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, common.WrapError(err, "failed to parse lookup response")
	}

	if info.Status == "fail" {
		return nil, common.NewError("lookup failed for '%s': %s", info.Query, info.Message)
	}
	return &info, nil
}
