// Package off implements the community nutrition source against the Open
// Food Facts API, including direct barcode lookup.
package off

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
)

// searchResponse is the wire shape of the OFF search endpoint.
type searchResponse struct {
	Products []offProduct `json:"products"`
	Count    int          `json:"count"`
}

// productResponse is the wire shape of the OFF barcode endpoint.
type productResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName string     `json:"product_name"`
	Brands      string     `json:"brands"`
	Nutriments  nutriments `json:"nutriments"`
}

// nutriments carries per-100g values. OFF reports sodium and salt in
// grams; the engine tracks sodium in milligrams.
type nutriments struct {
	EnergyKcal100g   float64 `json:"energy-kcal_100g"`
	Proteins100g     float64 `json:"proteins_100g"`
	Carbohydrates100 float64 `json:"carbohydrates_100g"`
	Fat100g          float64 `json:"fat_100g"`
	Fiber100g        float64 `json:"fiber_100g"`
	Iron100g         float64 `json:"iron_100g"`
	VitaminC100g     float64 `json:"vitamin-c_100g"`
	Magnesium100g    float64 `json:"magnesium_100g"`
	VitaminB12100g   float64 `json:"vitamin-b12_100g"`
	Sodium100g       float64 `json:"sodium_100g"`
	Sugars100g       float64 `json:"sugars_100g"`
	SaturatedFat100g float64 `json:"saturated-fat_100g"`
}

// Community records carry a flat source-assigned confidence; OFF data is
// crowd-sourced.
const communityConfidence = 0.75

// Client talks to the Open Food Facts API. No API key is required.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
}

// NewClient creates a new Open Food Facts client.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:  baseURL,
		pageSize: 10,
	}
}

// Tier marks this client as the community source.
func (c *Client) Tier() domain.SourceTier {
	return domain.TierCommunity
}

// Search queries OFF by free-form name and maps products to per-100g
// source records. Products without a name or calorie value are dropped.
func (c *Client) Search(ctx context.Context, name string) ([]domain.SourceRecord, error) {
	params := url.Values{}
	params.Add("search_terms", name)
	params.Add("search_simple", "1")
	params.Add("json", "1")
	params.Add("page_size", fmt.Sprintf("%d", c.pageSize))

	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, params.Encode())

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]domain.SourceRecord, 0, len(searchResp.Products))
	for i := range searchResp.Products {
		p := &searchResp.Products[i]
		if p.ProductName == "" || p.Nutriments.EnergyKcal100g == 0 {
			continue
		}
		records = append(records, mapProduct(p))
	}
	return records, nil
}

// ByBarcode fetches a single product by barcode. Status 0 from OFF means
// the code is unknown.
func (c *Client) ByBarcode(ctx context.Context, code string) (*domain.SourceRecord, error) {
	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var productResp productResponse
	if err := json.Unmarshal(body, &productResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if productResp.Status != 1 || productResp.Product.ProductName == "" {
		return nil, domain.ErrFoodNotFound
	}

	record := mapProduct(&productResp.Product)
	return &record, nil
}

// get executes a GET request and returns the body for 200 responses.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "NutriScore/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[OFF] API error - status: %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// mapProduct converts an OFF product to a source record. Sodium converts
// from grams to milligrams; B12 from grams to micrograms; iron, vitamin C,
// and magnesium from grams to milligrams.
func mapProduct(p *offProduct) domain.SourceRecord {
	name := p.ProductName
	if p.Brands != "" {
		name = fmt.Sprintf("%s (%s)", p.ProductName, p.Brands)
	}

	return domain.SourceRecord{
		Name: name,
		Facts: domain.NutritionFacts{
			Calories:     p.Nutriments.EnergyKcal100g,
			Protein:      p.Nutriments.Proteins100g,
			Carbs:        p.Nutriments.Carbohydrates100,
			Fat:          p.Nutriments.Fat100g,
			Fiber:        p.Nutriments.Fiber100g,
			Iron:         p.Nutriments.Iron100g * 1000,
			VitaminC:     p.Nutriments.VitaminC100g * 1000,
			Magnesium:    p.Nutriments.Magnesium100g * 1000,
			VitaminB12:   p.Nutriments.VitaminB12100g * 1e6,
			Sodium:       p.Nutriments.Sodium100g * 1000,
			Sugar:        p.Nutriments.Sugars100g,
			SaturatedFat: p.Nutriments.SaturatedFat100g,
		},
		Confidence: communityConfidence,
		Source:     domain.TierCommunity,
	}
}
