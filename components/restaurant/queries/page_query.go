package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

type pageService interface {
	Page(ctx context.Context, req restaurant.PageRequest) (map[string]any, error)
}

// PageQuery builds the payload of one admin screen.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[restaurant.PageRequest, map[string]any] = (*PageQuery)(nil)

// Query resolves the screen payload.
func (q *PageQuery) Query(ctx context.Context, req restaurant.PageRequest) (map[string]any, error) {
	return q.service.Page(ctx, req)
}
