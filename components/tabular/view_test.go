package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDirectionFlipFlop(t *testing.T) {
	assert.Equal(t, Ascending, NextDirection(nil, "name"))
	assert.Equal(t, Descending, NextDirection(&SortRule{Key: "name", Direction: Ascending}, "name"))
	assert.Equal(t, Ascending, NextDirection(&SortRule{Key: "name", Direction: Descending}, "name"))
	assert.Equal(t, Ascending, NextDirection(&SortRule{Key: "name", Direction: Descending}, "other"))
	assert.Equal(t, Ascending, NextDirection(&SortRule{Key: "name", Direction: Ascending}, "other"))
}

func TestIndicatorFor(t *testing.T) {
	rule := &SortRule{Key: "name", Direction: Descending}
	assert.Equal(t, SortedDown, IndicatorFor(rule, "name"))
	assert.Equal(t, Unsorted, IndicatorFor(rule, "email"))
	assert.Equal(t, Unsorted, IndicatorFor(nil, "name"))
	assert.Equal(t, SortedUp, IndicatorFor(&SortRule{Key: "name", Direction: Ascending}, "name"))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Descending, ParseDirection("descending"))
	assert.Equal(t, Ascending, ParseDirection(""))
	assert.Equal(t, Ascending, Descending.Reverse())
}

func TestViewRecomputesFromLiveSource(t *testing.T) {
	data := sampleRows()
	view := NewView(func() []row { return data }, rowSchema())
	view.SetFilter("status", "PENDING")
	assert.Equal(t, []string{"r1", "r4"}, ids(view.Rows()))

	data = append(data, row{ID: "r6", Status: "PENDING"})
	assert.Equal(t, []string{"r1", "r4", "r6"}, ids(view.Rows()))

	view.SetFilter("status", All)
	assert.Len(t, view.Rows(), 6)
}

func TestViewToggleSort(t *testing.T) {
	view := NewView(func() []row { return sampleRows() }, rowSchema())
	rule := view.ToggleSort("name")
	assert.Equal(t, Ascending, rule.Direction)
	assert.Equal(t, SortedUp, view.Indicator("name"))
	assert.Equal(t, "r1", view.Rows()[0].ID)

	rule = view.ToggleSort("name")
	assert.Equal(t, Descending, rule.Direction)
	assert.Equal(t, "r5", view.Rows()[0].ID)

	rule = view.ToggleSort("score")
	assert.Equal(t, Ascending, rule.Direction)
	assert.Equal(t, Unsorted, view.Indicator("name"))

	view.SetSort(nil)
	assert.Nil(t, view.Sort())
	assert.Equal(t, ids(sampleRows()), ids(view.Rows()))
}

func TestViewSearchResetsPage(t *testing.T) {
	view := NewView(func() []row { return sampleRows() }, rowSchema())
	view.SetPage(Page{Offset: 3, Limit: 2})
	assert.Equal(t, []string{"r4", "r5"}, ids(view.Result().Rows))

	view.Search("e", "name")
	res := view.Result()
	assert.Equal(t, 0, res.Page.Offset)
	assert.Equal(t, 2, len(res.Rows))
	assert.Equal(t, 4, res.Matched)
}

func TestViewClearFilterDropsRange(t *testing.T) {
	view := NewView(func() []row { return sampleRows() }, rowSchema())
	view.SetDateRange("when", day("2024-11-27"), day("2024-11-28"))
	assert.Len(t, view.Rows(), 2)
	view.ClearFilter("when")
	assert.Len(t, view.Rows(), 5)
	assert.Empty(t, view.Query().Filters)
}
