package restaurant

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

var (
	// ErrOrderCompleted is returned when advancing an order past its final stage.
	ErrOrderCompleted = errors.New("restaurant: order is already completed")
	// ErrUnknownStatus is returned for statuses outside the kitchen progression.
	ErrUnknownStatus = errors.New("restaurant: unknown order status")
)

// Stage describes one column of the live order board.
type Stage struct {
	Status      OrderStatus `json:"status"`
	Label       string      `json:"label"`
	Next        OrderStatus `json:"next,omitempty"`
	ActionLabel string      `json:"action_label"`
	Icon        string      `json:"icon"`
}

// Terminal reports whether the stage has no successor.
func (s Stage) Terminal() bool {
	return s.Next == ""
}

// Stages is the kitchen progression in board order.
var Stages = []Stage{
	{Status: StatusPending, Label: "New/Pending", Next: StatusPreparing, ActionLabel: "Start Prep", Icon: "fa-circle-exclamation"},
	{Status: StatusPreparing, Label: "Preparing", Next: StatusReady, ActionLabel: "Ready for Pickup", Icon: "fa-fire-burner"},
	{Status: StatusReady, Label: "Ready/Dispatch", Next: StatusCompleted, ActionLabel: "Mark Delivered", Icon: "fa-box-open"},
	{Status: StatusCompleted, Label: "Completed", ActionLabel: "Done", Icon: "fa-circle-check"},
}

// StageFor looks up the board stage of status.
func StageFor(status OrderStatus) (Stage, bool) {
	for _, stage := range Stages {
		if stage.Status == status {
			return stage, true
		}
	}
	return Stage{}, false
}

// NextStage returns the status that follows status. ok is false for the
// terminal stage and for statuses that are not on the board.
func NextStage(status OrderStatus) (next OrderStatus, ok bool) {
	stage, found := StageFor(status)
	if !found || stage.Terminal() {
		return "", false
	}
	return stage.Next, true
}

// Advance moves order one stage forward.
func Advance(order LiveOrder) (LiveOrder, error) {
	stage, ok := StageFor(order.Status)
	if !ok {
		return order, fmt.Errorf("%w: %s", ErrUnknownStatus, order.Status)
	}
	if stage.Terminal() {
		return order, fmt.Errorf("advance %s: %w", order.ID, ErrOrderCompleted)
	}
	order.Status = stage.Next
	return order, nil
}

// BoardColumn holds the orders of one stage.
type BoardColumn struct {
	Stage  Stage       `json:"stage"`
	Orders []LiveOrder `json:"orders"`
}

// Board is the live order board, one column per stage.
type Board struct {
	Columns []BoardColumn `json:"columns"`
}

// Count returns the number of orders in the column for status.
func (b Board) Count(status OrderStatus) int {
	for _, col := range b.Columns {
		if col.Stage.Status == status {
			return len(col.Orders)
		}
	}
	return 0
}

// GroupByStatus buckets orders into board columns using an equality filter
// per stage. Source order is preserved inside each column.
func GroupByStatus(orders []LiveOrder) Board {
	schema := OrderSchema()
	board := Board{Columns: make([]BoardColumn, 0, len(Stages))}
	for _, stage := range Stages {
		rows := tabular.Compute(orders, schema, tabular.Query{
			Filters: []tabular.FilterRule{tabular.Equals(FieldStatus, string(stage.Status))},
		})
		board.Columns = append(board.Columns, BoardColumn{Stage: stage, Orders: rows})
	}
	return board
}
