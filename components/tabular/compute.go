package tabular

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Compute returns the filtered, sorted subset of source for q. The source
// slice is never modified, and Page is ignored; use Run for paged output.
func Compute[R any](source []R, schema Schema[R], q Query) []R {
	active := make([]FilterRule, 0, len(q.Filters))
	for _, rule := range q.Filters {
		if rule.Active() {
			active = append(active, rule)
		}
	}
	out := make([]R, 0, len(source))
	for _, record := range source {
		if matchesAll(record, schema, active) {
			out = append(out, record)
		}
	}
	if q.Sort != nil && q.Sort.Key != "" {
		sortRecords(out, schema, *q.Sort)
	}
	return out
}

// Run computes the view and applies the page window.
func Run[R any](source []R, schema Schema[R], q Query) Result[R] {
	rows := Compute(source, schema, q)
	return Result[R]{
		Rows:    paginate(rows, q.Page),
		Total:   len(source),
		Matched: len(rows),
		Page:    q.Page,
	}
}

func paginate[R any](rows []R, page Page) []R {
	offset := max(page.Offset, 0)
	if offset >= len(rows) {
		return []R{}
	}
	end := len(rows)
	if page.Limit > 0 && offset+page.Limit < end {
		end = offset + page.Limit
	}
	return rows[offset:end]
}

func matchesAll[R any](record R, schema Schema[R], rules []FilterRule) bool {
	for _, rule := range rules {
		if !matches(record, schema, rule) {
			return false
		}
	}
	return true
}

func matches[R any](record R, schema Schema[R], rule FilterRule) bool {
	switch rule.Kind {
	case FilterSearch:
		term := strings.ToLower(strings.TrimSpace(rule.Value))
		for _, name := range rule.Fields {
			field, ok := schema.Lookup(name)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(field.text(record)), term) {
				return true
			}
		}
		return false
	case FilterEquals:
		field, ok := schema.Lookup(rule.Field)
		if !ok {
			return rule.Value == ""
		}
		return equalValue(record, field, rule.Value)
	case FilterDateRange:
		field, ok := schema.Lookup(rule.Field)
		if !ok {
			return false
		}
		t, ok := field.time(record)
		if !ok {
			return false
		}
		day := truncateDay(t)
		if !rule.Start.IsZero() && day.Before(truncateDay(rule.Start)) {
			return false
		}
		if !rule.End.IsZero() && day.After(truncateDay(rule.End)) {
			return false
		}
		return true
	}
	return true
}

func equalValue[R any](record R, field Field[R], want string) bool {
	switch field.Kind {
	case KindNumber:
		v, ok := field.number(record)
		if !ok {
			return false
		}
		target, err := strconv.ParseFloat(strings.TrimSpace(want), 64)
		return err == nil && v == target
	case KindTime:
		v, ok := field.time(record)
		if !ok {
			return false
		}
		target, ok := ParseTime(want)
		return ok && v.Equal(target)
	default:
		return field.text(record) == want
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortRecords[R any](rows []R, schema Schema[R], rule SortRule) {
	field, ok := schema.Lookup(rule.Key)
	if !ok {
		return
	}
	cmp := comparator(field)
	if rule.Direction == Descending {
		slices.SortStableFunc(rows, func(a, b R) int { return cmp(b, a) })
		return
	}
	slices.SortStableFunc(rows, cmp)
}

func comparator[R any](field Field[R]) func(a, b R) int {
	switch field.Kind {
	case KindNumber:
		return func(a, b R) int {
			return compareFloat(numberOrLowest(field, a), numberOrLowest(field, b))
		}
	case KindTime:
		return func(a, b R) int {
			return timeOrEarliest(field, a).Compare(timeOrEarliest(field, b))
		}
	default:
		return func(a, b R) int {
			return strings.Compare(field.text(a), field.text(b))
		}
	}
}

func numberOrLowest[R any](field Field[R], r R) float64 {
	v, ok := field.number(r)
	if !ok || math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}

func timeOrEarliest[R any](field Field[R], r R) time.Time {
	v, ok := field.time(r)
	if !ok {
		return time.Time{}
	}
	return v
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
