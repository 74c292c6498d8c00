package restaurant

import (
	"context"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// ViewState is the lifecycle of a screen.
type ViewState string

const (
	ViewLoading ViewState = "loading"
	ViewReady   ViewState = "ready"
)

// Screen is the view model of one tabular screen.
type Screen[R any] struct {
	Name   string            `json:"name"`
	State  ViewState         `json:"state"`
	Query  tabular.Query     `json:"query"`
	Result tabular.Result[R] `json:"result"`
	Theme  Theme             `json:"theme"`
}

// Ready reports whether rows are available.
func (s Screen[R]) Ready() bool { return s.State == ViewReady }

// Indicator returns the sort affordance for a column.
func (s Screen[R]) Indicator(key string) tabular.Indicator {
	return tabular.IndicatorFor(s.Query.Sort, key)
}

// Fetch loads one page of rows for a query.
type Fetch[R any] func(ctx context.Context, q tabular.Query) (tabular.Result[R], error)

// Loader fills screens from a data-fetch collaborator. It adds no delay of
// its own; a screen is Loading until Load returns.
type Loader[R any] struct {
	Name  string
	Fetch Fetch[R]
}

// Pending returns the Loading screen shown before rows arrive.
func (l Loader[R]) Pending(q tabular.Query, theme Theme) Screen[R] {
	return Screen[R]{Name: l.Name, State: ViewLoading, Query: q, Theme: theme}
}

// Load runs the fetch and returns a Ready screen. On error the screen stays
// Loading.
func (l Loader[R]) Load(ctx context.Context, q tabular.Query, theme Theme) (Screen[R], error) {
	screen := l.Pending(q, theme)
	if l.Fetch == nil {
		return screen, errMissingFetch
	}
	result, err := l.Fetch(ctx, q)
	if err != nil {
		return screen, err
	}
	screen.State = ViewReady
	screen.Result = result
	return screen, nil
}
