package analytics

import (
	"context"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// CategoryClient fetches revenue per menu category from a BI backend.
type CategoryClient interface {
	FetchCategories(ctx context.Context, query restaurant.AnalyticsQuery) ([]restaurant.CategoryRevenue, error)
}

// HourlyClient fetches order volume per weekday and hour.
type HourlyClient interface {
	FetchHourly(ctx context.Context, query restaurant.AnalyticsQuery) ([]restaurant.HourlySales, error)
}

// Client is a convenience union for services that implement all analytics calls.
type Client interface {
	CategoryClient
	HourlyClient
}
