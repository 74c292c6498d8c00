package restaurant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeToggleAndPalette(t *testing.T) {
	light := Theme{}
	dark := light.Toggle()

	assert.Equal(t, "light", light.Name())
	assert.Equal(t, "dark", dark.Name())
	assert.Equal(t, light, dark.Toggle())
	assert.Equal(t, types.ThemeWesteros, light.EChartsTheme())
	assert.Equal(t, types.ThemeChalk, dark.EChartsTheme())
	assert.Equal(t, "vintage", Theme{ChartTheme: "vintage", Dark: true}.EChartsTheme())

	palette := dark.Palette()
	palette["surface"] = "#000000"
	assert.Equal(t, "#1e293b", dark.Palette()["surface"])
	assert.NotEqual(t, light.Palette()["surface"], dark.Palette()["surface"])
}

func TestThemeCSSVariablesInline(t *testing.T) {
	css := Theme{}.CSSVariablesInline()
	if !strings.HasPrefix(css, "--accent: #f97316;") {
		t.Fatalf("expected sorted variables, got %q", css)
	}
	assert.Equal(t, css, Theme{}.CSSVariablesInline())
	assert.False(t, strings.HasSuffix(css, " "))
}

func TestStatusTone(t *testing.T) {
	assert.Equal(t, "status-pending", StatusTone(StatusPending))
	assert.Equal(t, "status-ready", StatusTone(StatusReady))
	assert.Equal(t, "danger", StatusTone(StatusCancelled))
	assert.Equal(t, "status-done", StatusTone(StatusCompleted))
}

func TestLoaderStates(t *testing.T) {
	q := tabular.Query{}.SortedBy(FieldName, tabular.Ascending)
	loader := Loader[MenuItem]{
		Name: ScreenMenu,
		Fetch: func(_ context.Context, q tabular.Query) (tabular.Result[MenuItem], error) {
			return tabular.Run(defaultMenu(), MenuSchema(), q), nil
		},
	}

	pending := loader.Pending(q, Theme{})
	assert.Equal(t, ViewLoading, pending.State)
	assert.False(t, pending.Ready())

	screen, err := loader.Load(context.Background(), q, Theme{})
	require.NoError(t, err)
	assert.True(t, screen.Ready())
	assert.Equal(t, "Chocolate Milkshake", screen.Result.Rows[0].Name)
	assert.Equal(t, tabular.SortedUp, screen.Indicator(FieldName))
	assert.Equal(t, tabular.Unsorted, screen.Indicator(FieldPrice))

	failing := Loader[MenuItem]{Name: ScreenMenu, Fetch: func(context.Context, tabular.Query) (tabular.Result[MenuItem], error) {
		return tabular.Result[MenuItem]{}, errors.New("offline")
	}}
	screen, err = failing.Load(context.Background(), q, Theme{})
	require.Error(t, err)
	assert.Equal(t, ViewLoading, screen.State)

	_, err = Loader[MenuItem]{}.Load(context.Background(), q, Theme{})
	assert.ErrorIs(t, err, errMissingFetch)
}

func TestNavigation(t *testing.T) {
	item, ok := NavItemFor(ScreenPromotions)
	require.True(t, ok)
	assert.Equal(t, "Offers & Promos", item.Label)
	assert.Equal(t, "/admin/promotions", item.Href("/admin/"))
	assert.Equal(t, "/promotions", item.Href(""))

	home, _ := NavItemFor(ScreenOverview)
	assert.Equal(t, "/admin", home.Href("admin"))

	_, ok = NavItemFor("kitchen")
	assert.False(t, ok)
}

func TestColumns(t *testing.T) {
	sort := &tabular.SortRule{Key: FieldPrice, Direction: tabular.Ascending}
	cols := Columns(ScreenMenu, sort)
	require.Len(t, cols, 4)
	assert.Equal(t, tabular.SortedUp, cols[2].Indicator)
	assert.Equal(t, tabular.Unsorted, cols[0].Indicator)
	assert.Empty(t, Columns(ScreenOverview, nil))
}

func TestReportCatalog(t *testing.T) {
	def, ok := ReportFor(ReportWeeklyPerformance)
	require.True(t, ok)
	assert.Equal(t, ReportXLSX, def.Format)

	_, ok = ReportFor("quarterly")
	assert.False(t, ok)
}
