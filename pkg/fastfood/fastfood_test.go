package fastfood

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/queries"
)

type nopRenderer struct{}

func (nopRenderer) Render(string, any, ...io.Writer) (string, error) { return "", nil }

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error without store")
	}
}

func TestNewWiresCommandsAndNotices(t *testing.T) {
	var seen []restaurant.Notice
	app, err := New(Config{
		Service: Options{
			Store: restaurant.NewMemoryStore(nil),
			Clock: func() time.Time { return time.Date(2024, time.November, 28, 12, 0, 0, 0, time.UTC) },
			NoticeHook: restaurant.NoticeHookFunc(func(_ context.Context, n restaurant.Notice) error {
				seen = append(seen, n)
				return nil
			}),
		},
		Renderer: nopRenderer{},
	})
	require.NoError(t, err)

	notices, cancel := app.Broadcast.Subscribe()
	defer cancel()

	require.NoError(t, app.Executor.AdvanceOrder(t.Context(), commands.AdvanceOrderInput{OrderID: "ORD-7432"}))

	select {
	case n := <-notices:
		assert.NotEmpty(t, n.Title)
	case <-time.After(time.Second):
		t.Fatalf("expected broadcast notice")
	}
	require.Len(t, seen, 1)

	board, err := app.Queries.Board.Query(t.Context(), queries.BoardInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, board.Count(restaurant.StatusPreparing))
	assert.Equal(t, 1, board.Count(restaurant.StatusPending))
}

func TestMountRequiresApp(t *testing.T) {
	if err := Mount[struct{}](nil, nil); err == nil {
		t.Fatalf("expected error for nil app")
	}
}
