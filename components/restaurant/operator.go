package restaurant

import (
	"context"
	"strings"
)

// Operator identifies the staff member acting on the dashboard. Mutations
// attribute their activity events to the operator found on the context.
type Operator struct {
	StaffID string
	RoleID  string
	StoreID string
}

func (o Operator) IsZero() bool {
	return o.StaffID == "" && o.RoleID == "" && o.StoreID == ""
}

type operatorKey struct{}

func WithOperator(ctx context.Context, op Operator) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	op.StaffID = strings.TrimSpace(op.StaffID)
	op.StoreID = strings.TrimSpace(op.StoreID)
	return context.WithValue(ctx, operatorKey{}, op)
}

// OperatorFrom returns the operator on ctx, or the zero Operator.
func OperatorFrom(ctx context.Context) Operator {
	if ctx == nil {
		return Operator{}
	}
	op, _ := ctx.Value(operatorKey{}).(Operator)
	return op
}
