package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

func TestRepositoriesDelegateToClient(t *testing.T) {
	mock := NewMockClient(MockData{
		Categories: []restaurant.CategoryRevenue{{Name: "Sides", Revenue: 2100, Orders: 750}},
		Hourly:     []restaurant.HourlySales{{Day: "Mon", Hour: "1PM", Orders: 4}},
	})

	categoryRepo := NewCategoryRevenueRepository(mock)
	if rows, err := categoryRepo.FetchCategoryRevenue(context.Background(), restaurant.AnalyticsQuery{}); err != nil || len(rows) != 1 {
		t.Fatalf("category repo returned %v, %v", rows, err)
	}

	hourlyRepo := NewHourlySalesRepository(mock)
	if rows, err := hourlyRepo.FetchHourlySales(context.Background(), restaurant.AnalyticsQuery{}); err != nil || len(rows) != 1 {
		t.Fatalf("hourly repo returned %v, %v", rows, err)
	}
}

func TestMockClientReturnsCopies(t *testing.T) {
	mock := NewMockClient(DefaultMockData())
	first, _ := mock.FetchCategories(context.Background(), restaurant.AnalyticsQuery{})
	first[0].Name = "mutated"
	second, _ := mock.FetchCategories(context.Background(), restaurant.AnalyticsQuery{})
	if second[0].Name == "mutated" {
		t.Fatalf("expected mock to hand out copies")
	}
}

func TestServiceUsesAnalyticsRepositories(t *testing.T) {
	mock := NewMockClient(DefaultMockData())
	svc := restaurant.NewService(restaurant.Options{
		Store:           restaurant.NewMemoryStore(nil),
		CategoryRevenue: NewCategoryRevenueRepository(mock),
		HourlySales:     NewHourlySalesRepository(mock),
		Clock:           func() time.Time { return time.Date(2024, time.November, 28, 0, 0, 0, 0, time.UTC) },
	})

	heatmap, err := svc.HourlyHeatmap(context.Background(), restaurant.AnalyticsQuery{})
	if err != nil {
		t.Fatalf("heatmap: %v", err)
	}
	if len(heatmap.Rows) != len(restaurant.HeatmapDays) || heatmap.Max == 0 {
		t.Fatalf("unexpected heatmap %#v", heatmap)
	}

	mock.Set(MockData{Err: errors.New("bi offline")})
	if _, err := svc.CategoryRevenue(context.Background(), restaurant.AnalyticsQuery{}); err == nil {
		t.Fatalf("expected client error to surface")
	}
}
