package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Name   string
	Email  string
	Status string
	Score  float64
	When   time.Time
	Extra  map[string]string
}

func day(value string) time.Time {
	t, ok := ParseTime(value)
	if !ok {
		panic("bad date " + value)
	}
	return t
}

func rowSchema() Schema[row] {
	return NewSchema(
		TextField("id", func(r row) string { return r.ID }),
		TextField("name", func(r row) string { return r.Name }),
		TextField("email", func(r row) string { return r.Email }),
		TextField("status", func(r row) string { return r.Status }),
		NumberField("score", func(r row) float64 { return r.Score }),
		TimeField("when", func(r row) time.Time { return r.When }),
		Field[row]{
			Name: "nickname",
			Kind: KindText,
			Text: func(r row) (string, bool) {
				v, ok := r.Extra["nickname"]
				return v, ok
			},
		},
		Field[row]{
			Name: "bonus",
			Kind: KindNumber,
			Number: func(r row) (float64, bool) {
				return 0, false
			},
		},
	)
}

func sampleRows() []row {
	return []row{
		{ID: "r1", Name: "Alice Johnson", Email: "alice@example.com", Status: "PENDING", Score: 15, When: day("2024-11-28 14:30")},
		{ID: "r2", Name: "Bob Smith", Email: "bob@example.com", Status: "PREPARING", Score: 7, When: day("2024-11-27 12:00")},
		{ID: "r3", Name: "Charlie Brown", Email: "charlie@example.com", Status: "READY", Score: 7, When: day("2024-11-25 18:10")},
		{ID: "r4", Name: "Diana Prince", Email: "diana@example.com", Status: "PENDING", Score: 22},
		{ID: "r5", Name: "Elias Vance", Email: "elias@example.com", Status: "PREPARING", Score: 7, When: day("2024-11-24 10:40"), Extra: map[string]string{"nickname": "Eli"}},
	}
}

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestComputeWithoutRulesPreservesOrder(t *testing.T) {
	src := sampleRows()
	out := Compute(src, rowSchema(), Query{})
	assert.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, ids(out))
}

func TestComputeDoesNotMutateSource(t *testing.T) {
	src := sampleRows()
	before := ids(src)
	_ = Compute(src, rowSchema(), Query{}.SortedBy("name", Descending))
	assert.Equal(t, before, ids(src))
}

func TestComputeIsIdempotent(t *testing.T) {
	src := sampleRows()
	q := Query{Filters: []FilterRule{SearchText("e", "name")}}.SortedBy("score", Ascending)
	first := Compute(src, rowSchema(), q)
	second := Compute(src, rowSchema(), q)
	assert.Equal(t, ids(first), ids(second))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	src := sampleRows()
	for _, term := range []string{"bob", "BOB", "Bob"} {
		out := Compute(src, rowSchema(), Query{Filters: []FilterRule{SearchText(term, "name", "email")}})
		require.Len(t, out, 1, term)
		assert.Equal(t, "Bob Smith", out[0].Name)
	}
}

func TestEmptySearchMatchesAll(t *testing.T) {
	out := Compute(sampleRows(), rowSchema(), Query{Filters: []FilterRule{SearchText("  ", "name")}})
	assert.Len(t, out, 5)
}

func TestEqualsAllSentinelIsNoop(t *testing.T) {
	out := Compute(sampleRows(), rowSchema(), Query{Filters: []FilterRule{Equals("status", All)}})
	assert.Len(t, out, 5)
}

func TestEqualsOnNumberField(t *testing.T) {
	out := Compute(sampleRows(), rowSchema(), Query{Filters: []FilterRule{Equals("score", "7")}})
	assert.Equal(t, []string{"r2", "r3", "r5"}, ids(out))
}

func TestFiltersCompose(t *testing.T) {
	src := sampleRows()
	a := Equals("status", "PREPARING")
	b := SearchText("vance", "name")
	ab := Compute(src, rowSchema(), Query{Filters: []FilterRule{a, b}})
	ba := Compute(src, rowSchema(), Query{Filters: []FilterRule{b, a}})
	assert.Equal(t, []string{"r5"}, ids(ab))
	assert.Equal(t, ids(ab), ids(ba))
}

func TestFilterMonotonicity(t *testing.T) {
	src := sampleRows()
	base := Query{Filters: []FilterRule{SearchText("e", "name", "email")}}
	extras := []FilterRule{
		Equals("status", "PENDING"),
		Equals("status", All),
		SearchText("x", "email"),
		DateRange("when", day("2024-11-25"), day("2024-11-28")),
		Equals("missing", "value"),
	}
	n := len(Compute(src, rowSchema(), base))
	for _, f := range extras {
		assert.LessOrEqual(t, len(Compute(src, rowSchema(), base.With(f))), n, f.Kind)
	}
}

func TestDateRangeIsInclusiveOnDays(t *testing.T) {
	out := Compute(sampleRows(), rowSchema(), Query{Filters: []FilterRule{
		DateRange("when", day("2024-11-25"), day("2024-11-27")),
	}})
	assert.Equal(t, []string{"r2", "r3"}, ids(out))
}

func TestDateRangeNeverMatchesMissingDate(t *testing.T) {
	out := Compute(sampleRows(), rowSchema(), Query{Filters: []FilterRule{
		DateRange("when", time.Time{}, day("2030-01-01")),
	}})
	assert.NotContains(t, ids(out), "r4")
	assert.Len(t, out, 4)
}

func TestSortStability(t *testing.T) {
	asc := Compute(sampleRows(), rowSchema(), Query{}.SortedBy("score", Ascending))
	assert.Equal(t, []string{"r2", "r3", "r5", "r1", "r4"}, ids(asc))

	desc := Compute(sampleRows(), rowSchema(), Query{}.SortedBy("score", Descending))
	assert.Equal(t, []string{"r4", "r1", "r2", "r3", "r5"}, ids(desc))
}

func TestSortCorrectness(t *testing.T) {
	src := sampleRows()
	for _, key := range []string{"name", "score", "when"} {
		field, _ := rowSchema().Lookup(key)
		cmp := comparator(field)
		asc := Compute(src, rowSchema(), Query{}.SortedBy(key, Ascending))
		for i := 1; i < len(asc); i++ {
			assert.LessOrEqual(t, cmp(asc[i-1], asc[i]), 0, key)
		}
		desc := Compute(src, rowSchema(), Query{}.SortedBy(key, Descending))
		for i := 1; i < len(desc); i++ {
			assert.GreaterOrEqual(t, cmp(desc[i-1], desc[i]), 0, key)
		}
	}
}

func TestSortByTimeDescendingPutsMissingLast(t *testing.T) {
	out := Compute(sampleRows(), rowSchema(), Query{}.SortedBy("when", Descending))
	assert.Equal(t, []string{"r1", "r2", "r3", "r5", "r4"}, ids(out))
}

func TestMissingFieldsDegrade(t *testing.T) {
	src := sampleRows()

	out := Compute(src, rowSchema(), Query{}.SortedBy("nickname", Descending))
	assert.Equal(t, "r5", out[0].ID)

	out = Compute(src, rowSchema(), Query{}.SortedBy("bonus", Ascending))
	assert.Equal(t, ids(src), ids(out))

	out = Compute(src, rowSchema(), Query{}.SortedBy("does_not_exist", Ascending))
	assert.Equal(t, ids(src), ids(out))

	out = Compute(src, rowSchema(), Query{Filters: []FilterRule{Equals("does_not_exist", "x")}})
	assert.Empty(t, out)
}

func TestRunPaginates(t *testing.T) {
	src := sampleRows()
	res := Run(src, rowSchema(), Query{Page: Page{Offset: 1, Limit: 2}})
	assert.Equal(t, []string{"r2", "r3"}, ids(res.Rows))
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 5, res.Matched)

	res = Run(src, rowSchema(), Query{Page: Page{Offset: 10}})
	assert.Empty(t, res.Rows)
	assert.NotNil(t, res.Rows)
}

func TestSchemaValidate(t *testing.T) {
	schema := rowSchema()
	require.NoError(t, schema.Validate(Query{Filters: []FilterRule{SearchText("x", "name")}}))

	err := schema.Validate(Query{
		Filters: []FilterRule{SearchText("x", "name", "phone"), Equals("phone", "1")},
		Sort:    &SortRule{Key: "age"},
	})
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"age", "phone"}, unknown.Fields)
}
