package analytics

import (
	"context"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// NewCategoryRevenueRepository adapts an analytics client into the service repository.
func NewCategoryRevenueRepository(client CategoryClient) restaurant.CategoryRevenueRepository {
	return &categoryRepository{client: client}
}

type categoryRepository struct {
	client CategoryClient
}

func (r *categoryRepository) FetchCategoryRevenue(ctx context.Context, query restaurant.AnalyticsQuery) ([]restaurant.CategoryRevenue, error) {
	return r.client.FetchCategories(ctx, query)
}

// NewHourlySalesRepository adapts the analytics client for the peak hours heatmap.
func NewHourlySalesRepository(client HourlyClient) restaurant.HourlySalesRepository {
	return &hourlyRepository{client: client}
}

type hourlyRepository struct {
	client HourlyClient
}

func (r *hourlyRepository) FetchHourlySales(ctx context.Context, query restaurant.AnalyticsQuery) ([]restaurant.HourlySales, error) {
	return r.client.FetchHourly(ctx, query)
}
