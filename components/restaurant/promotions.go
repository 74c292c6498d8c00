package restaurant

import "time"

// PromotionStatus is derived from a promotion's date window.
type PromotionStatus string

const (
	PromotionActive    PromotionStatus = "ACTIVE"
	PromotionScheduled PromotionStatus = "SCHEDULED"
	PromotionExpired   PromotionStatus = "EXPIRED"
)

// PromotionStatusAt evaluates p at now. The window covers whole days: it opens
// at the start of StartDate and closes at the end of EndDate.
func PromotionStatusAt(p Promotion, now time.Time) PromotionStatus {
	start := startOfDay(p.StartDate)
	end := startOfDay(p.EndDate).AddDate(0, 0, 1)
	switch {
	case !p.StartDate.IsZero() && now.Before(start):
		return PromotionScheduled
	case !p.EndDate.IsZero() && !now.Before(end):
		return PromotionExpired
	default:
		return PromotionActive
	}
}

// Discount returns the amount p takes off subtotal, or zero when the order
// is below the minimum.
func (p Promotion) Discount(subtotal float64) float64 {
	if subtotal < p.MinOrder {
		return 0
	}
	var off float64
	switch p.Type {
	case DiscountPercentage:
		off = subtotal * p.Value / 100
	default:
		off = p.Value
	}
	return min(off, subtotal)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
