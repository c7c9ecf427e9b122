package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single advisory call. There are no retries: one
// attempt, then the caller falls back to the standard strategy.
const DefaultTimeout = 2500 * time.Millisecond

// Client calls an external advisory service over HTTP+JSON.
//
// Request body: {"originText": ..., "destinationText": ..., "stopNames": [...]}
// Response body: an Advice object. Anything else (timeouts, transport
// errors, non-200 statuses, malformed JSON, unknown strategies) degrades
// to the standard strategy and is reported as an error for the caller to
// log and ignore.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

type suggestRequest struct {
	OriginText      string   `json:"originText"`
	DestinationText string   `json:"destinationText"`
	StopNames       []string `json:"stopNames"`
}

// NewClient builds an advisory client. A non-positive timeout falls back
// to DefaultTimeout.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Suggest(ctx context.Context, originText, destinationText string, stopNames []string) (Advice, error) {
	body, err := json.Marshal(suggestRequest{
		OriginText:      originText,
		DestinationText: destinationText,
		StopNames:       stopNames,
	})
	if err != nil {
		return Standard(), fmt.Errorf("advisory: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Standard(), fmt.Errorf("advisory: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Standard(), fmt.Errorf("advisory: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Standard(), fmt.Errorf("advisory: HTTP %d", resp.StatusCode)
	}

	var adv Advice
	if err := json.NewDecoder(resp.Body).Decode(&adv); err != nil {
		return Standard(), fmt.Errorf("advisory: decode response: %w", err)
	}

	switch adv.Strategy {
	case StrategyDirectPriority, StrategyTransferRequired, StrategyStandard:
	default:
		return Standard(), fmt.Errorf("advisory: unknown strategy %q", adv.Strategy)
	}
	return adv, nil
}
