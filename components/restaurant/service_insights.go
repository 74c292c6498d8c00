package restaurant

import (
	"context"
	"time"
)

// AnalyticsQuery bounds analytics lookups. Zero values mean unbounded.
type AnalyticsQuery struct {
	Since time.Time
	Until time.Time
}

// CategoryRevenueRepository returns revenue per menu category.
type CategoryRevenueRepository interface {
	FetchCategoryRevenue(ctx context.Context, query AnalyticsQuery) ([]CategoryRevenue, error)
}

// HourlySalesRepository returns order volume per day and hour.
type HourlySalesRepository interface {
	FetchHourlySales(ctx context.Context, query AnalyticsQuery) ([]HourlySales, error)
}

// storeAnalytics serves analytics from the store fixtures.
type storeAnalytics struct {
	store Store
}

func (a storeAnalytics) FetchCategoryRevenue(ctx context.Context, _ AnalyticsQuery) ([]CategoryRevenue, error) {
	return a.store.Categories(ctx)
}

func (a storeAnalytics) FetchHourlySales(ctx context.Context, _ AnalyticsQuery) ([]HourlySales, error) {
	return a.store.HourlySales(ctx)
}

// Settings returns the current configuration.
func (s *Service) Settings(ctx context.Context) (Settings, error) {
	store, err := s.store()
	if err != nil {
		return Settings{}, err
	}
	return store.Settings(ctx)
}

// SaveSettings replaces every settings section.
func (s *Service) SaveSettings(ctx context.Context, settings Settings) error {
	store, err := s.store()
	if err != nil {
		return err
	}
	if err := s.validate(ctx, FormSettings, settings); err != nil {
		return err
	}
	if err := store.SaveSettings(ctx, settings); err != nil {
		return err
	}
	s.success(ctx, "Configuration Saved", "All application settings have been successfully updated.", "settings")
	s.mutated(ctx, "restaurant.settings.update", "settings", "settings", nil)
	return nil
}

// CategoryRevenue returns revenue per category.
func (s *Service) CategoryRevenue(ctx context.Context, query AnalyticsQuery) ([]CategoryRevenue, error) {
	if s.opts.CategoryRevenue == nil {
		return nil, errMissingStore
	}
	categories, err := s.opts.CategoryRevenue.FetchCategoryRevenue(ctx, query)
	if err != nil {
		s.recordTelemetry(ctx, "restaurant.analytics.error", map[string]any{"report": "category_revenue", "error": err.Error()})
		return nil, err
	}
	return categories, nil
}

// HourlyHeatmap buckets hourly sales into the day x hour grid.
func (s *Service) HourlyHeatmap(ctx context.Context, query AnalyticsQuery) (Heatmap, error) {
	if s.opts.HourlySales == nil {
		return Heatmap{}, errMissingStore
	}
	sales, err := s.opts.HourlySales.FetchHourlySales(ctx, query)
	if err != nil {
		s.recordTelemetry(ctx, "restaurant.analytics.error", map[string]any{"report": "hourly_sales", "error": err.Error()})
		return Heatmap{}, err
	}
	return BuildHeatmap(sales), nil
}

// Overview computes the home screen KPIs.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	store, err := s.store()
	if err != nil {
		return Overview{}, err
	}
	var in OverviewInput
	if in.Orders, err = store.LiveOrders(ctx); err != nil {
		return Overview{}, err
	}
	if in.History, err = store.History(ctx); err != nil {
		return Overview{}, err
	}
	if in.Menu, err = store.MenuItems(ctx); err != nil {
		return Overview{}, err
	}
	if in.Inventory, err = store.InventoryItems(ctx); err != nil {
		return Overview{}, err
	}
	if in.Promotions, err = store.Promotions(ctx); err != nil {
		return Overview{}, err
	}
	if in.Categories, err = s.CategoryRevenue(ctx, AnalyticsQuery{}); err != nil {
		return Overview{}, err
	}
	return BuildOverview(in, s.Now()), nil
}

// Snapshot exports the store contents as fixtures.
func (s *Service) Snapshot(ctx context.Context) (*Fixtures, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	return store.Snapshot(ctx)
}

// Restore replaces the store contents. A nil document restores DefaultFixtures.
func (s *Service) Restore(ctx context.Context, doc *Fixtures) error {
	store, err := s.store()
	if err != nil {
		return err
	}
	if doc == nil {
		doc = DefaultFixtures()
	}
	if err := store.Restore(ctx, doc); err != nil {
		return err
	}
	s.success(ctx, "Data restored", "Dashboard data has been reset.", "")
	s.mutated(ctx, "restaurant.fixtures.restore", "fixtures", doc.Version, map[string]any{"source": doc.Source})
	return nil
}
