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

// ExerciseItem mirrors one exercise from the ExerciseDB API.
type ExerciseItem struct {
	Name      string `json:"name"`
	BodyPart  string `json:"bodyPart"`
	Equipment string `json:"equipment"`
	Target    string `json:"target"`
	GifURL    string `json:"gifUrl"`
}

// ExerciseFilter narrows the exercise listing. At most one of BodyPart,
// Target and Equipment applies, checked in that order.
type ExerciseFilter struct {
	BodyPart  string
	Target    string
	Equipment string
	Limit     string
	Offset    string
}

// ExerciseClient queries the ExerciseDB API via RapidAPI.
type ExerciseClient struct {
	APIKey     string
	APIHost    string
	BaseURL    string
	HTTPClient *http.Client
}

func NewExerciseClient(apiKey, apiHost string) *ExerciseClient {
	return &ExerciseClient{APIKey: apiKey, APIHost: apiHost}
}

func (c *ExerciseClient) get(ctx context.Context, path string, params url.Values, out any) error {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://" + c.APIHost
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	reqURL := baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create exercise request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.APIHost)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute exercise request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("exercise request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode exercise response: %w", err)
	}
	return nil
}

// List fetches exercises, narrowed by body part, target muscle or equipment.
func (c *ExerciseClient) List(ctx context.Context, filter ExerciseFilter) ([]ExerciseItem, error) {
	path := "/exercises"
	switch {
	case filter.BodyPart != "":
		path = "/exercises/bodyPart/" + url.PathEscape(filter.BodyPart)
	case filter.Target != "":
		path = "/exercises/target/" + url.PathEscape(filter.Target)
	case filter.Equipment != "":
		path = "/exercises/equipment/" + url.PathEscape(filter.Equipment)
	}

	params := url.Values{}
	params.Set("limit", defaultString(filter.Limit, "10"))
	params.Set("offset", defaultString(filter.Offset, "0"))

	var items []ExerciseItem
	if err := c.get(ctx, path, params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchByName searches exercises by name.
func (c *ExerciseClient) SearchByName(ctx context.Context, name string) ([]ExerciseItem, error) {
	var items []ExerciseItem
	if err := c.get(ctx, "/exercises/name/"+url.PathEscape(name), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// BodyParts fetches the list of body part names.
func (c *ExerciseClient) BodyParts(ctx context.Context) ([]string, error) {
	var parts []string
	if err := c.get(ctx, "/exercises/bodyPartList", nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}
