package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// CustomerDetailInput identifies a customer.
type CustomerDetailInput struct {
	CustomerID string
}

type customerService interface {
	CustomerDetail(ctx context.Context, id string) (restaurant.CustomerDetail, error)
}

// CustomerDetailQuery loads the customer modal.
type CustomerDetailQuery struct {
	service customerService
}

// NewCustomerDetailQuery builds the query.
func NewCustomerDetailQuery(service customerService) *CustomerDetailQuery {
	return &CustomerDetailQuery{service: service}
}

var _ gocommand.Querier[CustomerDetailInput, restaurant.CustomerDetail] = (*CustomerDetailQuery)(nil)

// Query resolves the customer and their favourite items.
func (q *CustomerDetailQuery) Query(ctx context.Context, input CustomerDetailInput) (restaurant.CustomerDetail, error) {
	return q.service.CustomerDetail(ctx, input.CustomerID)
}

// BoardInput requests the live order board.
type BoardInput struct{}

type boardService interface {
	LiveBoard(ctx context.Context) (restaurant.Board, error)
}

// BoardQuery loads the kitchen board.
type BoardQuery struct {
	service boardService
}

// NewBoardQuery builds the query.
func NewBoardQuery(service boardService) *BoardQuery {
	return &BoardQuery{service: service}
}

var _ gocommand.Querier[BoardInput, restaurant.Board] = (*BoardQuery)(nil)

// Query groups live orders by stage.
func (q *BoardQuery) Query(ctx context.Context, _ BoardInput) (restaurant.Board, error) {
	return q.service.LiveBoard(ctx)
}

// OverviewInput requests the home screen KPIs.
type OverviewInput struct{}

type overviewService interface {
	Overview(ctx context.Context) (restaurant.Overview, error)
}

// OverviewQuery loads the home screen KPIs.
type OverviewQuery struct {
	service overviewService
}

// NewOverviewQuery builds the query.
func NewOverviewQuery(service overviewService) *OverviewQuery {
	return &OverviewQuery{service: service}
}

var _ gocommand.Querier[OverviewInput, restaurant.Overview] = (*OverviewQuery)(nil)

// Query computes the overview.
func (q *OverviewQuery) Query(ctx context.Context, _ OverviewInput) (restaurant.Overview, error) {
	return q.service.Overview(ctx)
}
