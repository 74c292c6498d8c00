package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

func TestHTTPClientFetchCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sales/categories" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("expected auth header, got %s", got)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		q := r.URL.Query()
		if q.Get("since") != "2024-11-01" || q.Has("until") || q.Get("store") != "downtown" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		resp := categoryResponse{Categories: []categoryRow{{Name: "Drinks", Revenue: 7200, Orders: 2500}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL + "/", APIKey: "secret", StoreID: "downtown"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	since := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	categories, err := client.FetchCategories(context.Background(), restaurant.AnalyticsQuery{Since: since})
	if err != nil {
		t.Fatalf("fetch categories: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Drinks" {
		t.Fatalf("unexpected categories: %#v", categories)
	}
}

func TestHTTPClientFetchHourly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sales/hourly" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		resp := hourlyResponse{Buckets: []hourlyBucket{{Day: "Fri", Hour: "7PM", Orders: 42, Revenue: 610}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	sales, err := client.FetchHourly(context.Background(), restaurant.AnalyticsQuery{})
	if err != nil {
		t.Fatalf("fetch hourly: %v", err)
	}
	if len(sales) != 1 || sales[0].Orders != 42 {
		t.Fatalf("unexpected sales: %#v", sales)
	}
}

func TestHTTPClientRejectsUnknownBuckets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := hourlyResponse{Buckets: []hourlyBucket{{Day: "Funday", Hour: "7PM"}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, _ := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if _, err := client.FetchHourly(context.Background(), restaurant.AnalyticsQuery{}); err == nil || !strings.Contains(err.Error(), "Funday") {
		t.Fatalf("expected unknown day error, got %v", err)
	}
}

func TestHTTPClientRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "warehouse offline", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client, _ := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	_, err := client.FetchCategories(context.Background(), restaurant.AnalyticsQuery{})
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.StatusCode != http.StatusBadGateway || remote.Body != "warehouse offline" || !remote.Temporary() {
		t.Fatalf("unexpected remote error %#v", remote)
	}
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient(HTTPConfig{}); err == nil {
		t.Fatalf("expected base url error")
	}
	if _, err := NewHTTPClient(HTTPConfig{BaseURL: "analytics.local"}); err == nil {
		t.Fatalf("expected scheme-less url to be rejected")
	}
}
