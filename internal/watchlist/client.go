package watchlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

// Client queries a running engine's /check endpoint.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(baseURL string) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 1
	client.Logger = nil
	// short timeout: classification must not hang if the engine is down
	client.HTTPClient.Timeout = 2 * time.Second

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

func (c *Client) Check(ctx context.Context, address string) (*core.ValidationResult, error) {
	endpoint := fmt.Sprintf("%s/check?address=%s", c.baseURL, url.QueryEscape(address))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watchlist engine unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watchlist engine: HTTP %d", resp.StatusCode)
	}

	var result core.ValidationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode watchlist response: %w", err)
	}
	return &result, nil
}
