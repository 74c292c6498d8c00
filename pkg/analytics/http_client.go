package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// HTTPConfig points the client at a remote sales reporting service.
type HTTPConfig struct {
	BaseURL string
	APIKey  string
	// StoreID scopes every request to one restaurant location.
	StoreID    string
	HTTPClient *http.Client
}

// HTTPClient reads category and hourly sales from the reporting service.
type HTTPClient struct {
	base    *url.URL
	apiKey  string
	storeID string
	client  *http.Client
}

// RemoteError is a non-2xx answer from the reporting service.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("analytics: remote error %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying later may succeed.
func (e *RemoteError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("analytics: base url is required")
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("analytics: invalid base url %q", cfg.BaseURL)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{base: base, apiKey: cfg.APIKey, storeID: cfg.StoreID, client: httpClient}, nil
}

func (c *HTTPClient) FetchCategories(ctx context.Context, query restaurant.AnalyticsQuery) ([]restaurant.CategoryRevenue, error) {
	var resp categoryResponse
	if err := c.get(ctx, "/sales/categories", query, &resp); err != nil {
		return nil, err
	}
	return resp.toCategories(), nil
}

func (c *HTTPClient) FetchHourly(ctx context.Context, query restaurant.AnalyticsQuery) ([]restaurant.HourlySales, error) {
	var resp hourlyResponse
	if err := c.get(ctx, "/sales/hourly", query, &resp); err != nil {
		return nil, err
	}
	return resp.toSales()
}

func (c *HTTPClient) get(ctx context.Context, path string, query restaurant.AnalyticsQuery, target any) error {
	endpoint := c.base.JoinPath(path)
	endpoint.RawQuery = c.rangeValues(query).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "analytics: build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "analytics: GET %s", path)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RemoteError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "analytics: decode %s", path)
	}
	return nil
}

func (c *HTTPClient) rangeValues(query restaurant.AnalyticsQuery) url.Values {
	values := url.Values{}
	if !query.Since.IsZero() {
		values.Set("since", query.Since.UTC().Format(time.DateOnly))
	}
	if !query.Until.IsZero() {
		values.Set("until", query.Until.UTC().Format(time.DateOnly))
	}
	if c.storeID != "" {
		values.Set("store", c.storeID)
	}
	return values
}

type categoryRow struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type categoryResponse struct {
	Categories []categoryRow `json:"categories"`
}

func (r categoryResponse) toCategories() []restaurant.CategoryRevenue {
	out := make([]restaurant.CategoryRevenue, len(r.Categories))
	for i, row := range r.Categories {
		out[i] = restaurant.CategoryRevenue{Name: row.Name, Revenue: row.Revenue, Orders: row.Orders}
	}
	return out
}

type hourlyBucket struct {
	Day     string  `json:"day"`
	Hour    string  `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type hourlyResponse struct {
	Buckets []hourlyBucket `json:"buckets"`
}

func (r hourlyResponse) toSales() ([]restaurant.HourlySales, error) {
	out := make([]restaurant.HourlySales, len(r.Buckets))
	for i, bucket := range r.Buckets {
		if !slices.Contains(restaurant.HeatmapDays, bucket.Day) {
			return nil, fmt.Errorf("analytics: unknown heatmap day %q", bucket.Day)
		}
		if !slices.Contains(restaurant.HeatmapHours, bucket.Hour) {
			return nil, fmt.Errorf("analytics: unknown heatmap hour %q", bucket.Hour)
		}
		out[i] = restaurant.HourlySales{
			Day:     bucket.Day,
			Hour:    bucket.Hour,
			Orders:  bucket.Orders,
			Revenue: bucket.Revenue,
		}
	}
	return out, nil
}
