package restaurant

import (
	"bytes"
	"io"
	"slices"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const defaultChartHeight = "360px"

// ChartRenderer renders analytics charts as embeddable HTML.
type ChartRenderer struct {
	cache      RenderCache
	assetsHost string
}

// ChartOption customizes a ChartRenderer.
type ChartOption func(*ChartRenderer)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) ChartOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithChartAssetsHost rewrites the host ECharts JS loads from.
func WithChartAssetsHost(host string) ChartOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a renderer with a five minute cache.
func NewChartRenderer(options ...ChartOption) *ChartRenderer {
	r := &ChartRenderer{cache: NewChartCache(5 * time.Minute)}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// CategoryRevenueChart renders revenue per category as bars.
func (r *ChartRenderer) CategoryRevenueChart(categories []CategoryRevenue, theme Theme) (string, error) {
	return r.cached("category_revenue", theme, categories, func() (string, error) {
		names := make([]string, len(categories))
		revenue := make([]opts.BarData, len(categories))
		for i, c := range categories {
			names[i] = c.Name
			revenue[i] = opts.BarData{Name: c.Name, Value: c.Revenue}
		}
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions("Revenue by Category", "Completed orders", theme)...)
		bar.SetXAxis(names)
		bar.AddSeries("Revenue", revenue)
		return renderChart(bar)
	})
}

// CategoryShareChart renders each category's share of orders.
func (r *ChartRenderer) CategoryShareChart(categories []CategoryRevenue, theme Theme) (string, error) {
	return r.cached("category_share", theme, categories, func() (string, error) {
		data := make([]opts.PieData, len(categories))
		for i, c := range categories {
			data[i] = opts.PieData{Name: c.Name, Value: c.Orders}
		}
		pie := charts.NewPie()
		pie.SetGlobalOptions(r.globalOptions("Orders by Category", "", theme)...)
		pie.AddSeries("Orders", data)
		return renderChart(pie)
	})
}

// RevenueTrendChart renders completed revenue per day, oldest first.
func (r *ChartRenderer) RevenueTrendChart(history []HistoryOrder, theme Theme) (string, error) {
	days, totals := dailyRevenue(history)
	return r.cached("revenue_trend", theme, [2]any{days, totals}, func() (string, error) {
		points := make([]opts.LineData, len(totals))
		for i, total := range totals {
			points[i] = opts.LineData{Name: days[i], Value: total}
		}
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalOptions("Daily Revenue", "Completed orders", theme)...)
		line.SetXAxis(days)
		line.AddSeries("Revenue", points)
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	})
}

// HeatmapChart renders order volume by day and hour.
func (r *ChartRenderer) HeatmapChart(hm Heatmap, theme Theme) (string, error) {
	return r.cached("hourly_heatmap", theme, hm, func() (string, error) {
		var data []opts.HeatMapData
		for i, row := range hm.Rows {
			for j, cell := range row {
				data = append(data, opts.HeatMapData{Value: [3]any{j, i, cell.Orders}})
			}
		}
		heat := charts.NewHeatMap()
		heat.SetGlobalOptions(append(r.globalOptions("Peak Hours", "Orders per hour", theme),
			charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: hm.Days}),
			charts.WithVisualMapOpts(opts.VisualMap{
				Calculable: opts.Bool(true),
				Min:        0,
				Max:        float32(max(hm.Max, 1)),
			}),
		)...)
		heat.SetXAxis(hm.Hours)
		heat.AddSeries("Orders", data)
		return renderChart(heat)
	})
}

func (r *ChartRenderer) cached(kind string, theme Theme, data any, render func() (string, error)) (string, error) {
	if r.cache == nil {
		return render()
	}
	return r.cache.GetOrRender(ChartKey{Chart: kind, Theme: theme.EChartsTheme(), Digest: dataHash(data)}, render)
}

func (r *ChartRenderer) globalOptions(title, subtitle string, theme Theme) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  theme.EChartsTheme(),
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// dailyRevenue sums completed order totals per calendar day.
func dailyRevenue(history []HistoryOrder) ([]string, []float64) {
	sums := map[string]float64{}
	for _, order := range history {
		if order.Status != StatusCompleted || order.Date.IsZero() {
			continue
		}
		sums[order.Date.Format(time.DateOnly)] += order.Total
	}
	days := make([]string, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	slices.Sort(days)
	totals := make([]float64, len(days))
	for i, day := range days {
		totals[i] = sums[day]
	}
	return days, totals
}
