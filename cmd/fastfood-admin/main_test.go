package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/pkg/activity"
	"github.com/goliatone/go-fastfood-admin/pkg/activity/usersink"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeConfigOverlaysDefaults(t *testing.T) {
	doc := `
notices_address: ":9877"
theme:
  dark: true
  chart_theme: vintage
chart_cache_ttl: 2m
analytics:
  base_url: http://analytics.local
  timeout: 3s
`
	cfg, err := decodeConfig(strings.NewReader(doc), defaultFileConfig())
	require.NoError(t, err)
	assert.Equal(t, ":9876", cfg.Address)
	assert.Equal(t, "/admin", cfg.BasePath)
	assert.Equal(t, ":9877", cfg.NoticesAddress)
	assert.True(t, cfg.Theme.Dark)
	assert.Equal(t, "vintage", cfg.Theme.ChartTheme)
	assert.Equal(t, 2*time.Minute, cfg.ChartCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Analytics.Timeout)
}

func TestDecodeConfigRejectsUnknownFields(t *testing.T) {
	_, err := decodeConfig(strings.NewReader("adress: :80\n"), defaultFileConfig())
	require.Error(t, err)
}

func TestDecodeEmptyConfig(t *testing.T) {
	cfg, err := decodeConfig(strings.NewReader(""), defaultFileConfig())
	require.NoError(t, err)
	assert.Equal(t, defaultFileConfig(), cfg)
}

func TestFlagsOverrideFile(t *testing.T) {
	cmd := serveCmd{Address: ":8080", Dark: true, Now: "2024-11-28", AnalyticsURL: "http://remote"}
	cfg := cmd.apply(fileConfig{Address: ":9876", BasePath: "/ops", LogLevel: "warn"})
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "/ops", cfg.BasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Theme.Dark)
	assert.Equal(t, "http://remote", cfg.Analytics.BaseURL)

	clock, err := cfg.clock()
	require.NoError(t, err)
	assert.Equal(t, 2024, clock().Year())
}

func TestBuildSeedsDemoStore(t *testing.T) {
	cfg := defaultFileConfig()
	cfg.Now = "2024-11-28"
	app, journal, err := build(t.Context(), cfg, discardLogger())
	require.NoError(t, err)

	board, err := app.Service.LiveBoard(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, board.Count(restaurant.StatusPending))

	ctx := restaurant.WithOperator(t.Context(), restaurant.Operator{StaffID: "S-002"})
	_, err = app.Service.AdvanceOrder(ctx, "ORD-7432")
	require.NoError(t, err)
	recent := journal.Recent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, "ORD-7432", recent[0].ObjectID)
	assert.Equal(t, "S-002", recent[0].Data["staff_id"])
}

func TestBuildRejectsBadClock(t *testing.T) {
	cfg := defaultFileConfig()
	cfg.Now = "soon"
	_, _, err := build(t.Context(), cfg, discardLogger())
	require.Error(t, err)
}

func TestNoticesServerStreamsWebSocket(t *testing.T) {
	hook := restaurant.NewBroadcastHook()
	srv := httptest.NewServer(newNoticesServer("", hook, usersink.NewJournal(0)).Handler)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/notices/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hook.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, hook.Notice(t.Context(), restaurant.Notice{Title: "Order updated", Subject: "order/ORD-7432"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got restaurant.Notice
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "Order updated", got.Title)
	assert.Equal(t, "order/ORD-7432", got.Subject)
}

func TestNoticesServerListsActivity(t *testing.T) {
	journal := usersink.NewJournal(0)
	hook := usersink.Hook{Sink: journal}
	for _, id := range []string{"M-001", "M-002"} {
		require.NoError(t, hook.Notify(t.Context(), activity.Event{Verb: "restaurant.menu.toggle", ObjectType: "menu_item", ObjectID: id}))
	}
	srv := httptest.NewServer(newNoticesServer("", restaurant.NewBroadcastHook(), journal).Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/activity?limit=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
}
