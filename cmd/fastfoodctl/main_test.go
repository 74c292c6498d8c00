package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/httpapi"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

func demoGlobals(t *testing.T) *Globals {
	t.Helper()
	return &Globals{Now: "2024-11-28", LogLevel: "error"}
}

func TestListParamsNormalizeFilterNames(t *testing.T) {
	cmd := listCmd{
		Screen: restaurant.ScreenInventory,
		Filter: map[string]string{"stockLevel": "Critical"},
		Sort:   "reorderPoint",
		Desc:   true,
		Limit:  3,
	}
	get := cmd.params()
	assert.Equal(t, "Critical", get("stock_level"))
	assert.Equal(t, "reorder_point", get("sort"))
	assert.Equal(t, "descending", get("dir"))
	assert.Equal(t, "3", get("limit"))
	assert.Empty(t, get("offset"))
}

func TestCollectInventoryCriticalOnly(t *testing.T) {
	s, err := demoGlobals(t).open()
	require.NoError(t, err)

	cmd := listCmd{Screen: restaurant.ScreenInventory, Filter: map[string]string{"stock_level": "Critical"}, Sort: "stock"}
	q, err := httpapi.ParseQuery(cmd.Screen, cmd.params(), s.app.Service.Now())
	require.NoError(t, err)

	list, err := collect(t.Context(), s.app.Service, cmd.Screen, q)
	require.NoError(t, err)
	assert.Equal(t, 7, list.Total)
	assert.Equal(t, 5, list.Matched)
	require.Len(t, list.Rows, 5)
	if list.Rows[0][0] != "I-003" {
		t.Fatalf("expected lettuce first by stock, got %v", list.Rows[0])
	}
	for _, row := range list.Rows {
		assert.Equal(t, "Critical", row[len(row)-1])
	}
}

func TestCollectUnknownScreen(t *testing.T) {
	s, err := demoGlobals(t).open()
	require.NoError(t, err)
	_, err = collect(t.Context(), s.app.Service, "analytics", tabular.Query{})
	if !errors.Is(err, restaurant.ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestListingRenderAndJSON(t *testing.T) {
	s, err := demoGlobals(t).open()
	require.NoError(t, err)
	cmd := listCmd{Screen: restaurant.ScreenOrders, Search: "alice", Sort: "id"}
	q, err := httpapi.ParseQuery(cmd.Screen, cmd.params(), s.app.Service.Now())
	require.NoError(t, err)
	list, err := collect(t.Context(), s.app.Service, cmd.Screen, q)
	require.NoError(t, err)

	rendered := list.render()
	assert.Contains(t, rendered, "Time Placed")
	assert.Contains(t, rendered, "Id ▲")
	assert.Contains(t, rendered, "ORD-7432")
	assert.Contains(t, rendered, "1 of 1 matching, 6 total")

	var buf bytes.Buffer
	require.NoError(t, list.write(&buf, "json"))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(1), decoded["matched"])
}

func TestSessionPersistWritesFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, writeFixtures(path, restaurant.DefaultFixtures()))

	g := &Globals{Fixtures: path, Write: true, LogLevel: "error"}
	cmd := advanceCmd{OrderID: "ORD-7432"}
	s, err := g.open()
	require.NoError(t, err)
	var out bytes.Buffer
	s.out = &out
	require.NoError(t, s.app.Handlers.AdvanceOrder.Execute(t.Context(), commands.AdvanceOrderInput{OrderID: cmd.OrderID}))
	require.NoError(t, s.persist(t.Context()))

	doc, err := restaurant.ReadFixtures(path)
	require.NoError(t, err)
	for _, order := range doc.Orders {
		if order.ID == "ORD-7432" {
			assert.Equal(t, restaurant.StatusPreparing, order.Status)
			return
		}
	}
	t.Fatalf("ORD-7432 missing from persisted fixtures")
}

func TestWriteFixturesKeepsOriginalOnEncodeFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.yaml")
	require.NoError(t, writeFixtures(path, restaurant.DefaultFixtures()))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	if err := writeFixtures(path, nil); err == nil {
		t.Fatalf("expected encode failure for nil document")
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fixtures.yaml", entries[0].Name())

	doc, err := restaurant.ReadFixtures(path)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Orders)
}

func TestPersistRequiresFixturesPath(t *testing.T) {
	s, err := (&Globals{Write: true, LogLevel: "error"}).open()
	require.NoError(t, err)
	err = s.persist(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--write requires --fixtures")
}

func TestExportWritesIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	cmd := exportCmd{Code: "daily_sales", Compression: "gzip", Out: dir}
	require.NoError(t, cmd.Run(t.Context(), demoGlobals(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".csv.gz"), entries[0].Name())
}

func TestInvalidNowFlag(t *testing.T) {
	_, err := (&Globals{Now: "yesterday"}).open()
	require.Error(t, err)
}

func TestBoardModelNavigatesAndAdvances(t *testing.T) {
	svc := restaurant.NewService(restaurant.Options{Store: restaurant.NewMemoryStore(restaurant.DefaultFixtures())})
	var advanced []string
	model := newBoardModel(context.Background(), boardSource{
		load: svc.LiveBoard,
		advance: func(ctx context.Context, id string) error {
			advanced = append(advanced, id)
			_, err := svc.AdvanceOrder(ctx, id)
			return err
		},
	})

	msg := model.Init()()
	next, _ := model.Update(msg)
	model = next.(boardModel)
	require.Len(t, model.board.Columns, len(restaurant.Stages))

	next, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	model = next.(boardModel)
	order, ok := model.selected()
	require.True(t, ok)
	assert.Equal(t, "ORD-7427", order.ID)

	next, cmd := model.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	model = next.(boardModel)
	require.NotNil(t, cmd)
	next, _ = model.Update(cmd())
	model = next.(boardModel)

	assert.Equal(t, []string{"ORD-7427"}, advanced)
	assert.Equal(t, "ORD-7427 moved to PREPARING", model.status)
	assert.Equal(t, 1, model.board.Count(restaurant.StatusPending))
	assert.Equal(t, 0, model.row)
	assert.Contains(t, model.render(), "Preparing (3)")
}

func TestBoardModelSurfacesCompletedError(t *testing.T) {
	svc := restaurant.NewService(restaurant.Options{Store: restaurant.NewMemoryStore(restaurant.DefaultFixtures())})
	model := newBoardModel(context.Background(), boardSource{
		load:    svc.LiveBoard,
		advance: func(ctx context.Context, id string) error { _, err := svc.AdvanceOrder(ctx, id); return err },
	})
	next, _ := model.Update(model.Init()())
	model = next.(boardModel)
	for range len(restaurant.Stages) {
		next, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyRight})
		model = next.(boardModel)
	}
	assert.Equal(t, len(restaurant.Stages)-1, model.col)

	next, cmd := model.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	model = next.(boardModel)
	next, _ = model.Update(cmd())
	model = next.(boardModel)
	if !errors.Is(model.err, restaurant.ErrOrderCompleted) {
		t.Fatalf("expected ErrOrderCompleted, got %v", model.err)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
