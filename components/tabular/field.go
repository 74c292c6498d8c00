// Package tabular computes the visible rows of list screens (orders, customers,
// inventory, promotions, staff) from a record collection and a declarative set
// of search, filter, sort and paging rules.
package tabular

import (
	"sort"
	"time"
)

// Kind identifies the semantic type of a field and therefore its natural ordering.
type Kind int

const (
	// KindText orders lexicographically.
	KindText Kind = iota
	// KindNumber orders numerically.
	KindNumber
	// KindTime orders chronologically.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "text"
	}
}

// Field is a typed accessor for one named field of R. Only the accessor that
// matches Kind is consulted; it returns ok=false when the record has no value.
type Field[R any] struct {
	Name   string
	Kind   Kind
	Text   func(R) (string, bool)
	Number func(R) (float64, bool)
	Time   func(R) (time.Time, bool)
}

// TextField declares a text field backed by fn.
func TextField[R any](name string, fn func(R) string) Field[R] {
	return Field[R]{
		Name: name,
		Kind: KindText,
		Text: func(r R) (string, bool) { return fn(r), true },
	}
}

// NumberField declares a numeric field backed by fn.
func NumberField[R any](name string, fn func(R) float64) Field[R] {
	return Field[R]{
		Name:   name,
		Kind:   KindNumber,
		Number: func(r R) (float64, bool) { return fn(r), true },
	}
}

// TimeField declares a date field backed by fn. A zero time counts as missing.
func TimeField[R any](name string, fn func(R) time.Time) Field[R] {
	return Field[R]{
		Name: name,
		Kind: KindTime,
		Time: func(r R) (time.Time, bool) {
			t := fn(r)
			return t, !t.IsZero()
		},
	}
}

func (f Field[R]) text(r R) string {
	switch f.Kind {
	case KindText:
		if f.Text == nil {
			return ""
		}
		v, _ := f.Text(r)
		return v
	case KindNumber:
		v, ok := f.number(r)
		if !ok {
			return ""
		}
		return formatNumber(v)
	case KindTime:
		v, ok := f.time(r)
		if !ok {
			return ""
		}
		return v.Format(time.RFC3339)
	}
	return ""
}

func (f Field[R]) number(r R) (float64, bool) {
	if f.Number == nil {
		return 0, false
	}
	return f.Number(r)
}

func (f Field[R]) time(r R) (time.Time, bool) {
	if f.Time == nil {
		return time.Time{}, false
	}
	return f.Time(r)
}

// Schema is the dispatch table from field name to typed accessor for one view.
type Schema[R any] struct {
	fields map[string]Field[R]
	order  []string
}

// NewSchema builds a schema from the provided fields. Later fields with a
// duplicate name replace earlier ones.
func NewSchema[R any](fields ...Field[R]) Schema[R] {
	s := Schema[R]{fields: make(map[string]Field[R], len(fields))}
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		if _, ok := s.fields[f.Name]; !ok {
			s.order = append(s.order, f.Name)
		}
		s.fields[f.Name] = f
	}
	return s
}

// Lookup returns the field registered under name.
func (s Schema[R]) Lookup(name string) (Field[R], bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Names lists the declared fields in declaration order.
func (s Schema[R]) Names() []string {
	return append([]string(nil), s.order...)
}

// Validate reports rules that reference fields the schema does not declare.
// Compute never needs this; transports call it to reject bad requests early.
func (s Schema[R]) Validate(q Query) error {
	var unknown []string
	check := func(name string) {
		if name == "" {
			return
		}
		if _, ok := s.fields[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	for _, rule := range q.Filters {
		check(rule.Field)
		for _, name := range rule.Fields {
			check(name)
		}
	}
	if q.Sort != nil {
		check(q.Sort.Key)
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownFieldError{Fields: dedupe(unknown)}
}

func dedupe(in []string) []string {
	out := in[:0]
	for i, v := range in {
		if i > 0 && in[i-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
