package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

var exportDay = time.Date(2024, time.November, 28, 12, 0, 0, 0, time.UTC)

func newExporter(t *testing.T) *Exporter {
	t.Helper()
	svc := restaurant.NewService(restaurant.Options{
		Store: restaurant.NewMemoryStore(nil),
		Clock: func() time.Time { return exportDay },
	})
	return NewExporter(svc, WithClock(func() time.Time { return exportDay }))
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportDailySalesCSV(t *testing.T) {
	file, err := newExporter(t).Export(t.Context(), Request{Code: restaurant.ReportDailySales})
	require.NoError(t, err)

	assert.Equal(t, "daily_sales-20241128.csv", file.Name)
	assert.Equal(t, contentTypeCSV, file.ContentType)

	rows := readCSV(t, file.Data)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Date", "Orders", "Completed", "Cancelled", "Revenue"}, rows[0])
	assert.Equal(t, []string{"2024-11-24", "2", "2", "0", "70.20"}, rows[1])
	assert.Equal(t, []string{"2024-11-25", "2", "1", "1", "29.99"}, rows[2])
	assert.Equal(t, []string{"2024-11-28", "2", "2", "0", "67.50"}, rows[5])
}

func TestExportMonthlyRevenueGroupsByPayment(t *testing.T) {
	file, err := newExporter(t).Export(t.Context(), Request{Code: restaurant.ReportMonthlyRevenue})
	require.NoError(t, err)

	rows := readCSV(t, file.Data)
	assert.Equal(t, [][]string{
		{"Month", "Payment", "Orders", "Revenue"},
		{"2024-11", "Card", "3", "95.95"},
		{"2024-11", "Cash", "3", "137.50"},
		{"2024-11", "App", "2", "48.98"},
	}, rows)
}

func TestExportWeeklyPerformanceWorkbook(t *testing.T) {
	file, err := newExporter(t).Export(t.Context(), Request{Code: restaurant.ReportWeeklyPerformance})
	require.NoError(t, err)

	assert.Equal(t, "weekly_performance-20241128.xlsx", file.Name)
	assert.Equal(t, contentTypeXLSX, file.ContentType)

	book, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{"Categories", "Peak Hours", "Outcomes"}, book.GetSheetList())

	categories, err := book.GetRows("Categories")
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, []string{"Main Courses", "15500.00", "1200"}, categories[2])

	hours, err := book.GetRows("Peak Hours")
	require.NoError(t, err)
	require.Len(t, hours, 8)
	assert.Equal(t, "Day", hours[0][0])
	assert.Equal(t, "Mon", hours[1][0])
	assert.Len(t, hours[0], 13)

	outcomes, err := book.GetRows("Outcomes")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Status", "Orders", "Total"},
		{"COMPLETED", "8", "282.43"},
		{"CANCELLED", "2", "21.49"},
	}, outcomes)
}

func TestExportCompressionRoundTrip(t *testing.T) {
	exporter := newExporter(t)
	plain, err := exporter.Export(t.Context(), Request{Code: restaurant.ReportDailySales})
	require.NoError(t, err)

	cases := []struct {
		compression Compression
		name        string
		contentType string
	}{
		{CompressionGzip, "daily_sales-20241128.csv.gz", "application/gzip"},
		{CompressionZstd, "daily_sales-20241128.csv.zst", "application/zstd"},
		{CompressionXZ, "daily_sales-20241128.csv.xz", "application/x-xz"},
	}
	for _, tc := range cases {
		t.Run(string(tc.compression), func(t *testing.T) {
			file, err := exporter.Export(t.Context(), Request{Code: restaurant.ReportDailySales, Compression: tc.compression})
			require.NoError(t, err)
			assert.Equal(t, tc.name, file.Name)
			assert.Equal(t, tc.contentType, file.ContentType)

			r, closeReader, err := tc.compression.NewReader(bytes.NewReader(file.Data))
			require.NoError(t, err)
			defer closeReader()
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, plain.Data, data)
		})
	}
}

func TestExportUnknownReport(t *testing.T) {
	_, err := newExporter(t).Export(t.Context(), Request{Code: "quarterly"})
	if !errors.Is(err, ErrUnknownReport) {
		t.Fatalf("expected ErrUnknownReport, got %v", err)
	}
}

func TestExportRequiresSource(t *testing.T) {
	_, err := NewExporter(nil).Export(t.Context(), Request{Code: restaurant.ReportDailySales})
	require.Error(t, err)
}

type failingSource struct{}

func (failingSource) OrderHistory(context.Context, tabular.Query) (tabular.Result[restaurant.HistoryOrder], error) {
	return tabular.Result[restaurant.HistoryOrder]{}, errors.New("history offline")
}

func (failingSource) CategoryRevenue(context.Context, restaurant.AnalyticsQuery) ([]restaurant.CategoryRevenue, error) {
	return nil, nil
}

func (failingSource) HourlyHeatmap(context.Context, restaurant.AnalyticsQuery) (restaurant.Heatmap, error) {
	return restaurant.Heatmap{}, nil
}

func TestExportWrapsSourceErrors(t *testing.T) {
	_, err := NewExporter(failingSource{}).Export(t.Context(), Request{Code: restaurant.ReportDailySales})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collect daily_sales")
	assert.Contains(t, err.Error(), "history offline")
}

func TestParseCompression(t *testing.T) {
	for input, want := range map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"gz":   CompressionGzip,
		".zst": CompressionZstd,
		"XZ":   CompressionXZ,
	} {
		got, err := ParseCompression(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	if _, err := ParseCompression("bz2"); !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestWriteXLSXRequiresTables(t *testing.T) {
	require.Error(t, WriteXLSX(io.Discard))
}
