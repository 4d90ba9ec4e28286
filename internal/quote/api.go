package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is a quotable-compatible random quote endpoint.
const DefaultAPIURL = "https://api.quotable.io/random"

// DefaultTimeout bounds a single passage fetch.
const DefaultTimeout = 10 * time.Second

type apiResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// API fetches passages from a quotable-style JSON endpoint.
type API struct {
	url    string
	client *http.Client
}

// NewAPI builds an API provider. Empty url or zero timeout fall back to
// the defaults.
func NewAPI(url string, timeout time.Duration) *API {
	if url == "" {
		url = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &API{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch implements Provider.
func (a *API) Fetch(ctx context.Context) (Passage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, http.NoBody)
	if err != nil {
		return Passage{}, &FetchError{Reason: fmt.Sprintf("failed to create request: %v", err)}
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return Passage{}, &FetchError{Reason: fmt.Sprintf("network error: %v", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Passage{}, &FetchError{Reason: fmt.Sprintf("unexpected quote API status: %s", resp.Status)}
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Passage{}, &FetchError{Reason: fmt.Sprintf("invalid quote API response: %v", err)}
	}
	content := strings.TrimSpace(payload.Content)
	if content == "" {
		return Passage{}, &FetchError{Reason: "quote API returned empty content"}
	}
	author := strings.TrimSpace(payload.Author)
	if author == "" {
		author = UnknownAuthor
	}
	return Passage{Content: content, Author: author}, nil
}
