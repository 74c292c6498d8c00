package tabular

import (
	"sync"
	"time"
)

// Source supplies the live record collection owned by an external state container.
type Source[R any] func() []R

// View holds the mutable rule set of one screen and recomputes rows from its
// source on every read. Rules are keyed: each filter slot (search, a field
// equality, a date range) holds at most one rule.
type View[R any] struct {
	mu      sync.RWMutex
	source  Source[R]
	schema  Schema[R]
	search  FilterRule
	filters map[string]FilterRule
	order   []string
	sort    *SortRule
	page    Page
}

// NewView binds a schema to a source.
func NewView[R any](source Source[R], schema Schema[R]) *View[R] {
	if source == nil {
		source = func() []R { return nil }
	}
	return &View[R]{
		source:  source,
		schema:  schema,
		filters: map[string]FilterRule{},
	}
}

// Search sets the search term over fields. An empty term clears the search.
func (v *View[R]) Search(term string, fields ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = SearchText(term, fields...)
	v.page.Offset = 0
}

// SetFilter constrains field to value. All clears the constraint.
func (v *View[R]) SetFilter(field, value string) {
	if value == All {
		v.ClearFilter(field)
		return
	}
	v.setRule("eq:"+field, Equals(field, value))
}

// SetDateRange constrains field to [start, end].
func (v *View[R]) SetDateRange(field string, start, end time.Time) {
	v.setRule("range:"+field, DateRange(field, start, end))
}

// ClearFilter drops the equality and range constraints on field.
func (v *View[R]) ClearFilter(field string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dropLocked("eq:" + field)
	v.dropLocked("range:" + field)
	v.page.Offset = 0
}

// ToggleSort applies the column click on key and returns the new rule.
func (v *View[R]) ToggleSort(key string) SortRule {
	v.mu.Lock()
	defer v.mu.Unlock()
	next := Toggle(v.sort, key)
	v.sort = &next
	return next
}

// SetSort replaces the sort rule. A nil rule restores source order.
func (v *View[R]) SetSort(rule *SortRule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if rule == nil {
		v.sort = nil
		return
	}
	cp := *rule
	v.sort = &cp
}

// SetPage sets the page window.
func (v *View[R]) SetPage(page Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = page
}

// Sort returns a copy of the active sort rule, if any.
func (v *View[R]) Sort() *SortRule {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.sort == nil {
		return nil
	}
	cp := *v.sort
	return &cp
}

// Indicator reports the affordance for column key.
func (v *View[R]) Indicator(key string) Indicator {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return IndicatorFor(v.sort, key)
}

// Query snapshots the current rule set.
func (v *View[R]) Query() Query {
	v.mu.RLock()
	defer v.mu.RUnlock()
	q := Query{Page: v.page}
	if v.search.Kind != "" {
		q.Filters = append(q.Filters, v.search)
	}
	for _, key := range v.order {
		q.Filters = append(q.Filters, v.filters[key])
	}
	if v.sort != nil {
		cp := *v.sort
		q.Sort = &cp
	}
	return q
}

// Rows computes the full ordered, filtered rows ignoring the page window.
func (v *View[R]) Rows() []R {
	return Compute(v.source(), v.schema, v.Query())
}

// Result computes the paged view.
func (v *View[R]) Result() Result[R] {
	return Run(v.source(), v.schema, v.Query())
}

func (v *View[R]) setRule(key string, rule FilterRule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.filters[key]; !ok {
		v.order = append(v.order, key)
	}
	v.filters[key] = rule
	v.page.Offset = 0
}

func (v *View[R]) dropLocked(key string) {
	if _, ok := v.filters[key]; !ok {
		return
	}
	delete(v.filters, key)
	for i, k := range v.order {
		if k == key {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
}
