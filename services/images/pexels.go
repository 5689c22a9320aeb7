package images

import (
	game_constants "Heartbait/constants/game"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result is one photo option offered to the player while composing a
// profile.
type Result struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// Client queries the Pexels photo search API. A missing API key or any
// provider failure degrades to an empty result set; the player only ever
// sees "no results".
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: game_constants.PEXELS_SEARCH_URL,
	}
}

type pexelsResponse struct {
	Photos []struct {
		ID  int `json:"id"`
		Src struct {
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// Search returns up to one page of photos matching the free-text term.
// Never returns an error to callers: failures are logged and surface as an
// empty list.
func (c *Client) Search(ctx context.Context, term string) []Result {
	if c.apiKey == "" {
		log.Printf("[IMAGES-ERROR] Pexels API key is missing, returning empty results")
		return []Result{}
	}

	query := url.Values{}
	query.Set("query", term)
	query.Set("per_page", strconv.Itoa(game_constants.PEXELS_PAGE_SIZE))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		log.Printf("[IMAGES-ERROR] Error building Pexels request: %v", err)
		return []Result{}
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[IMAGES-ERROR] Pexels request failed: %v", err)
		return []Result{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[IMAGES-ERROR] Pexels returned status %d for term %q", resp.StatusCode, term)
		return []Result{}
	}

	var parsed pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[IMAGES-ERROR] Error decoding Pexels response: %v", err)
		return []Result{}
	}

	results := make([]Result, 0, len(parsed.Photos))
	for _, photo := range parsed.Photos {
		results = append(results, Result{ID: photo.ID, URL: photo.Src.Medium})
	}

	log.Printf("[IMAGES] Pexels search %q returned %d results", term, len(results))
	return results
}
