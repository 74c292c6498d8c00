package restaurant

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// HistoryRangeStart is the first day shown by the order history screen.
var HistoryRangeStart = time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)

// DefaultHistoryQuery spans HistoryRangeStart through now, newest first.
func DefaultHistoryQuery(now time.Time) tabular.Query {
	return tabular.Query{
		Filters: []tabular.FilterRule{tabular.DateRange(FieldDate, HistoryRangeStart, now)},
		Sort:    &tabular.SortRule{Key: FieldDate, Direction: tabular.Descending},
	}
}

// LiveBoard groups live orders into one column per kitchen stage.
func (s *Service) LiveBoard(ctx context.Context) (Board, error) {
	store, err := s.store()
	if err != nil {
		return Board{}, err
	}
	orders, err := store.LiveOrders(ctx)
	if err != nil {
		return Board{}, err
	}
	board := GroupByStatus(orders)
	s.recordTelemetry(ctx, "restaurant.board.resolve", map[string]any{"orders": len(orders)})
	return board, nil
}

// LiveOrders lists live orders through the tabular engine.
func (s *Service) LiveOrders(ctx context.Context, q tabular.Query) (tabular.Result[LiveOrder], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[LiveOrder]{}, err
	}
	orders, err := store.LiveOrders(ctx)
	if err != nil {
		return tabular.Result[LiveOrder]{}, err
	}
	return run(ctx, s, "orders", orders, OrderSchema(), q), nil
}

// AdvanceOrder moves an order to its next stage. Completed orders are
// rejected with ErrOrderCompleted and left untouched.
func (s *Service) AdvanceOrder(ctx context.Context, id string) (LiveOrder, error) {
	store, err := s.store()
	if err != nil {
		return LiveOrder{}, err
	}
	if id == "" {
		return LiveOrder{}, errMissingID
	}
	var from OrderStatus
	order, err := store.UpdateLiveOrder(ctx, id, func(current LiveOrder) (LiveOrder, error) {
		from = current.Status
		return Advance(current)
	})
	if err != nil {
		return LiveOrder{}, err
	}
	stage, _ := StageFor(order.Status)
	s.success(ctx, "Order updated", fmt.Sprintf("Order %s moved to %s.", order.ID, stage.Label), "order/"+order.ID)
	s.mutated(ctx, "restaurant.order.advance", "order", order.ID, map[string]any{
		"from": string(from),
		"to":   string(order.Status),
	})
	return order, nil
}

// OrderHistory lists past orders. A nil sort defaults to newest first.
func (s *Service) OrderHistory(ctx context.Context, q tabular.Query) (tabular.Result[HistoryOrder], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[HistoryOrder]{}, err
	}
	history, err := store.History(ctx)
	if err != nil {
		return tabular.Result[HistoryOrder]{}, err
	}
	if q.Sort == nil {
		q.Sort = &tabular.SortRule{Key: FieldDate, Direction: tabular.Descending}
	}
	return run(ctx, s, "history", history, HistorySchema(), q), nil
}
