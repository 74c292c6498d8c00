package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// TableQuery runs tabular rules against one screen's rows.
type TableQuery[R any] struct {
	fetch func(ctx context.Context, q tabular.Query) (tabular.Result[R], error)
}

// NewTableQuery wraps a service list method, e.g. Service.OrderHistory.
func NewTableQuery[R any](fetch func(ctx context.Context, q tabular.Query) (tabular.Result[R], error)) *TableQuery[R] {
	return &TableQuery[R]{fetch: fetch}
}

var _ gocommand.Querier[tabular.Query, tabular.Result[restaurant.Customer]] = (*TableQuery[restaurant.Customer])(nil)

// Query returns the matching page of rows.
func (q *TableQuery[R]) Query(ctx context.Context, rules tabular.Query) (tabular.Result[R], error) {
	if q.fetch == nil {
		return tabular.Result[R]{}, errors.New("table query requires fetch")
	}
	return q.fetch(ctx, rules)
}
