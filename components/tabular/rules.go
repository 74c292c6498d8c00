package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// All is the equality sentinel meaning "no constraint".
const All = "All"

// Direction is the order applied to the active sort key.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Reverse flips the direction.
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts asc/desc in short or long form. Anything else is Ascending.
func ParseDirection(value string) Direction {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// SortRule is the single active sort column.
type SortRule struct {
	Key       string    `json:"key" yaml:"key"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// FilterKind tags the predicate a FilterRule applies.
type FilterKind string

const (
	FilterSearch    FilterKind = "search"
	FilterEquals    FilterKind = "equals"
	FilterDateRange FilterKind = "date_range"
)

// FilterRule is one active predicate. Which fields are read depends on Kind:
// search uses Fields and Value, equals uses Field and Value, date_range uses
// Field, Start and End.
type FilterRule struct {
	Kind   FilterKind `json:"kind" yaml:"kind"`
	Field  string     `json:"field,omitempty" yaml:"field,omitempty"`
	Fields []string   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Value  string     `json:"value,omitempty" yaml:"value,omitempty"`
	Start  time.Time  `json:"start,omitempty" yaml:"start,omitempty"`
	End    time.Time  `json:"end,omitempty" yaml:"end,omitempty"`
}

// SearchText matches records whose designated text fields contain term,
// ignoring case. An empty term matches everything.
func SearchText(term string, fields ...string) FilterRule {
	return FilterRule{Kind: FilterSearch, Value: term, Fields: fields}
}

// Equals matches records whose field equals value exactly. All matches everything.
func Equals(field, value string) FilterRule {
	return FilterRule{Kind: FilterEquals, Field: field, Value: value}
}

// DateRange matches records whose date falls inside [start, end], compared on
// calendar days.
func DateRange(field string, start, end time.Time) FilterRule {
	return FilterRule{Kind: FilterDateRange, Field: field, Start: start, End: end}
}

// Active reports whether the rule constrains anything.
func (r FilterRule) Active() bool {
	switch r.Kind {
	case FilterSearch:
		return strings.TrimSpace(r.Value) != ""
	case FilterEquals:
		return r.Value != All
	case FilterDateRange:
		return true
	}
	return false
}

// Page selects a window of the computed rows. Limit 0 means no limit.
type Page struct {
	Offset int `json:"offset" yaml:"offset"`
	Limit  int `json:"limit" yaml:"limit"`
}

// Query is the full rule set for one computation.
type Query struct {
	Filters []FilterRule `json:"filters,omitempty" yaml:"filters,omitempty"`
	Sort    *SortRule    `json:"sort,omitempty" yaml:"sort,omitempty"`
	Page    Page         `json:"page" yaml:"page"`
}

// With returns a copy of q with extra filters appended.
func (q Query) With(rules ...FilterRule) Query {
	out := q
	out.Filters = append(append([]FilterRule(nil), q.Filters...), rules...)
	return out
}

// SortedBy returns a copy of q sorted by key in dir.
func (q Query) SortedBy(key string, dir Direction) Query {
	out := q
	out.Sort = &SortRule{Key: key, Direction: dir}
	return out
}

// Result carries the visible rows plus counts for pagers and empty states.
type Result[R any] struct {
	Rows    []R  `json:"rows"`
	Total   int  `json:"total"`
	Matched int  `json:"matched"`
	Page    Page `json:"page"`
}

// UnknownFieldError lists rule fields missing from a schema.
type UnknownFieldError struct {
	Fields []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("tabular: unknown field(s): %s", strings.Join(e.Fields, ", "))
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime accepts RFC3339, "2006-01-02 15:04" and "2006-01-02" values.
func ParseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
