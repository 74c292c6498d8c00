package restaurant

import (
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/types"
)

// Theme is the explicit presentation config handed to every render. There is
// no process-wide theme state; callers pass the viewer's choice along.
type Theme struct {
	Dark bool `json:"dark" yaml:"dark"`
	// ChartTheme overrides the echarts theme picked from Dark.
	ChartTheme string `json:"chart_theme,omitempty" yaml:"chart_theme,omitempty"`
}

var (
	lightTokens = map[string]string{
		"surface":          "#ffffff",
		"surface-muted":    "#f8fafc",
		"text":             "#0f172a",
		"text-muted":       "#64748b",
		"border":           "#e2e8f0",
		"accent":           "#f97316",
		"status-pending":   "#eab308",
		"status-preparing": "#3b82f6",
		"status-ready":     "#22c55e",
		"status-done":      "#94a3b8",
		"danger":           "#ef4444",
	}
	darkTokens = map[string]string{
		"surface":          "#1e293b",
		"surface-muted":    "#0f172a",
		"text":             "#f1f5f9",
		"text-muted":       "#94a3b8",
		"border":           "#334155",
		"accent":           "#fb923c",
		"status-pending":   "#facc15",
		"status-preparing": "#60a5fa",
		"status-ready":     "#4ade80",
		"status-done":      "#64748b",
		"danger":           "#f87171",
	}
)

// Name is "dark" or "light".
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite theme, keeping the chart override.
func (t Theme) Toggle() Theme {
	t.Dark = !t.Dark
	return t
}

// Palette returns a copy of the colour tokens for the theme.
func (t Theme) Palette() map[string]string {
	src := lightTokens
	if t.Dark {
		src = darkTokens
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

// EChartsTheme names the echarts theme used for charts.
func (t Theme) EChartsTheme() string {
	if t.ChartTheme != "" {
		return t.ChartTheme
	}
	if t.Dark {
		return types.ThemeChalk
	}
	return types.ThemeWesteros
}

// CSSVariablesInline renders the palette as a style attribute value with
// keys in a stable order.
func (t Theme) CSSVariablesInline() string {
	palette := t.Palette()
	keys := make([]string, 0, len(palette))
	for key := range palette {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for _, key := range keys {
		builder.WriteString("--")
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(palette[key])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

// StatusTone maps an order status onto a palette token.
func StatusTone(status OrderStatus) string {
	switch status {
	case StatusPending:
		return "status-pending"
	case StatusPreparing:
		return "status-preparing"
	case StatusReady:
		return "status-ready"
	case StatusCancelled:
		return "danger"
	default:
		return "status-done"
	}
}
