// Package usda implements the authoritative nutrition source against the
// USDA FoodData Central API.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/nutriscore/backend/internal/domain"
	"golang.org/x/time/rate"
)

// searchResponse is the wire shape of the FDC search endpoint.
type searchResponse struct {
	Foods     []fdcFood `json:"foods"`
	TotalHits int       `json:"totalHits"`
}

type fdcFood struct {
	FdcID       int           `json:"fdcId"`
	Description string        `json:"description"`
	DataType    string        `json:"dataType"`
	Nutrients   []fdcNutrient `json:"foodNutrients"`
}

type fdcNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// Client handles communication with the USDA FoodData Central API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	pageSize    int
}

// NewClient creates a new USDA API client.
func NewClient(apiKey, baseURL string) *Client {
	// USDA allows 1000 requests per hour, so roughly 0.278 requests/sec.
	limiter := rate.NewLimiter(rate.Limit(0.278), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		pageSize:    10,
	}
}

// Tier marks this client as the authoritative source.
func (c *Client) Tier() domain.SourceTier {
	return domain.TierAuthoritative
}

// Search queries FDC for candidate foods and maps them to per-100g source
// records. Transient failures are retried up to 3 times; a final failure
// surfaces as an error for the resolver to swallow.
func (c *Client) Search(ctx context.Context, name string) ([]domain.SourceRecord, error) {
	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", name)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", "Survey (FNDDS),Foundation,Branded")
	params.Add("pageSize", fmt.Sprintf("%d", c.pageSize))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[USDA] request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[USDA] API error (attempt %d) - status: %d", attempt, resp.StatusCode)
			if resp.StatusCode == http.StatusNotFound {
				return nil, nil
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		records := make([]domain.SourceRecord, 0, len(searchResp.Foods))
		for i := range searchResp.Foods {
			records = append(records, mapFood(&searchResp.Foods[i]))
		}
		return records, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "NutriScore/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return resp, nil
}
