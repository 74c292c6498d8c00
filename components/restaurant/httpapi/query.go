package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// ErrBadQuery marks malformed list parameters.
var ErrBadQuery = errors.New("httpapi: bad query")

type screenRules struct {
	search  []string
	filters []string
	date    string
}

var listRules = map[string]screenRules{
	restaurant.ScreenOrders:     {search: restaurant.OrderSearchFields, filters: []string{restaurant.FieldStatus}},
	restaurant.ScreenHistory:    {search: restaurant.HistorySearchFields, filters: []string{restaurant.FieldStatus, restaurant.FieldPayment}, date: restaurant.FieldDate},
	restaurant.ScreenMenu:       {search: restaurant.MenuSearchFields, filters: []string{restaurant.FieldCategory, restaurant.FieldStatus}},
	restaurant.ScreenInventory:  {search: restaurant.InventorySearchFields, filters: []string{restaurant.FieldStockLevel}},
	restaurant.ScreenCustomers:  {search: restaurant.CustomerSearchFields},
	restaurant.ScreenPromotions: {search: restaurant.PromotionSearchFields, filters: []string{restaurant.FieldStatus}},
	restaurant.ScreenStaff:      {search: restaurant.StaffSearchFields, filters: []string{restaurant.FieldRole}},
}

// ParseQuery turns list parameters into tabular rules for screen.
//
//	q            search term over the screen's search fields
//	<field>      equality filter, "All" clears it
//	sort, dir    sort key and asc|desc
//	from, to     date range on the screen's date field
//	offset, limit
//
// The history screen falls back to its default range and newest first order.
func ParseQuery(screen string, get func(string) string, now time.Time) (tabular.Query, error) {
	rules, ok := listRules[screen]
	if !ok {
		return tabular.Query{}, nil
	}
	var q tabular.Query
	if screen == restaurant.ScreenHistory {
		q = restaurant.DefaultHistoryQuery(now)
		if get("from") != "" || get("to") != "" {
			q.Filters = nil
		}
	}

	if term := strings.TrimSpace(get("q")); term != "" {
		q = q.With(tabular.SearchText(term, rules.search...))
	}
	for _, field := range rules.filters {
		if value := strings.TrimSpace(get(field)); value != "" {
			q = q.With(tabular.Equals(field, value))
		}
	}
	if rules.date != "" {
		from, to := get("from"), get("to")
		if from != "" || to != "" {
			start, end, err := parseRange(from, to)
			if err != nil {
				return tabular.Query{}, err
			}
			q = q.With(tabular.DateRange(rules.date, start, end))
		}
	}
	if key := strings.TrimSpace(get("sort")); key != "" {
		q = q.SortedBy(key, tabular.ParseDirection(get("dir")))
	}

	offset, err := parseCount("offset", get("offset"))
	if err != nil {
		return tabular.Query{}, err
	}
	limit, err := parseCount("limit", get("limit"))
	if err != nil {
		return tabular.Query{}, err
	}
	q.Page = tabular.Page{Offset: offset, Limit: limit}
	return q, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	if from != "" {
		t, ok := tabular.ParseTime(from)
		if !ok {
			return start, end, fmt.Errorf("%w: from %q", ErrBadQuery, from)
		}
		start = t
	}
	if to != "" {
		t, ok := tabular.ParseTime(to)
		if !ok {
			return start, end, fmt.Errorf("%w: to %q", ErrBadQuery, to)
		}
		end = t
	}
	return start, end, nil
}

func parseCount(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrBadQuery, name, value)
	}
	return n, nil
}
