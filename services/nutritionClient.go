package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultNutritionBaseURL = "https://api.api-ninjas.com"

// NutritionItem mirrors one result from the nutrition lookup API. Numeric
// fields are declared as any because non-premium responses replace them with
// placeholder strings; callers run them through the meal sanitizer.
type NutritionItem struct {
	Name     string `json:"name"`
	Calories any    `json:"calories"`
	Protein  any    `json:"protein_g"`
	Carbs    any    `json:"carbohydrates_total_g"`
	Fat      any    `json:"fat_total_g"`
	Fiber    any    `json:"fiber_g"`
	Sugar    any    `json:"sugar_g"`
}

// NutritionClient queries the API Ninjas nutrition endpoint.
type NutritionClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewNutritionClient(apiKey string) *NutritionClient {
	return &NutritionClient{APIKey: apiKey}
}

// Search looks up nutrition facts for a free-text food query.
func (c *NutritionClient) Search(ctx context.Context, query string) ([]NutritionItem, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultNutritionBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	reqURL := fmt.Sprintf("%s/v1/nutrition?query=%s", baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute nutrition request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("nutrition request failed with status %d", resp.StatusCode)
	}

	var items []NutritionItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode nutrition response: %w", err)
	}
	return items, nil
}
