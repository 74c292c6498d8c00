package analytics

import (
	"context"
	"slices"
	"sync"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// MockData seeds deterministic analytics responses for tests or local demos.
type MockData struct {
	Categories []restaurant.CategoryRevenue
	Hourly     []restaurant.HourlySales
	// Err, when set, is returned by every call.
	Err error
}

// MockClient implements Client using in-memory fixtures.
type MockClient struct {
	data MockData
	mu   sync.RWMutex
}

// NewMockClient builds a mock analytics client from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	return &MockClient{data: data}
}

// DefaultMockData mirrors the sample store.
func DefaultMockData() MockData {
	doc := restaurant.DefaultFixtures()
	return MockData{Categories: doc.Categories, Hourly: doc.HourlySales}
}

// Set swaps the fixtures.
func (c *MockClient) Set(data MockData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
}

// FetchCategories returns the configured categories ignoring the range.
func (c *MockClient) FetchCategories(context.Context, restaurant.AnalyticsQuery) ([]restaurant.CategoryRevenue, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data.Err != nil {
		return nil, c.data.Err
	}
	return slices.Clone(c.data.Categories), nil
}

// FetchHourly returns the configured hourly sales ignoring the range.
func (c *MockClient) FetchHourly(context.Context, restaurant.AnalyticsQuery) ([]restaurant.HourlySales, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data.Err != nil {
		return nil, c.data.Err
	}
	return slices.Clone(c.data.Hourly), nil
}
