// Package reports exports the analytics downloads as CSV or XLSX files,
// optionally compressed.
package reports

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// ErrUnknownReport is returned for codes missing from restaurant.ReportCatalog.
var ErrUnknownReport = errors.New("reports: unknown report")

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Source is the slice of restaurant.Service the exporter reads.
type Source interface {
	OrderHistory(ctx context.Context, q tabular.Query) (tabular.Result[restaurant.HistoryOrder], error)
	CategoryRevenue(ctx context.Context, q restaurant.AnalyticsQuery) ([]restaurant.CategoryRevenue, error)
	HourlyHeatmap(ctx context.Context, q restaurant.AnalyticsQuery) (restaurant.Heatmap, error)
}

// File is a rendered report ready to download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Request selects a report and its packaging.
type Request struct {
	Code        string
	Compression Compression
}

// Exporter renders catalogue reports from a Source.
type Exporter struct {
	source Source
	now    func() time.Time
}

// Option customizes an Exporter.
type Option func(*Exporter)

// WithClock sets the clock used to stamp file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExporter builds an exporter.
func NewExporter(source Source, opts ...Option) *Exporter {
	e := &Exporter{source: source, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the report named by req.Code.
func (e *Exporter) Export(ctx context.Context, req Request) (File, error) {
	if e.source == nil {
		return File{}, errors.New("reports: exporter requires a source")
	}
	def, ok := restaurant.ReportFor(req.Code)
	if !ok {
		return File{}, errors.Wrapf(ErrUnknownReport, "%q", req.Code)
	}
	tables, err := e.tables(ctx, def.Code)
	if err != nil {
		return File{}, errors.Wrapf(err, "reports: collect %s", def.Code)
	}

	var buf bytes.Buffer
	w, closeWriter, err := req.Compression.NewWriter(&buf)
	if err != nil {
		return File{}, err
	}
	switch def.Format {
	case restaurant.ReportXLSX:
		err = WriteXLSX(w, tables...)
	default:
		err = WriteCSV(w, tables[0])
	}
	if err != nil {
		return File{}, err
	}
	if err := closeWriter(); err != nil {
		return File{}, errors.Wrap(err, "reports: flush compression")
	}

	file := File{
		Name: strings.Join([]string{def.Code, e.now().UTC().Format("20060102")}, "-") +
			"." + string(def.Format) + req.Compression.Extension(),
		ContentType: contentTypeCSV,
		Data:        buf.Bytes(),
	}
	if def.Format == restaurant.ReportXLSX {
		file.ContentType = contentTypeXLSX
	}
	if ct := req.Compression.ContentType(); ct != "" {
		file.ContentType = ct
	}
	return file, nil
}

func (e *Exporter) tables(ctx context.Context, code string) ([]Table, error) {
	history, err := e.source.OrderHistory(ctx, tabular.Query{})
	if err != nil {
		return nil, err
	}
	switch code {
	case restaurant.ReportDailySales:
		return []Table{DailySales(history.Rows)}, nil
	case restaurant.ReportMonthlyRevenue:
		return []Table{MonthlyRevenue(history.Rows)}, nil
	case restaurant.ReportWeeklyPerformance:
		categories, err := e.source.CategoryRevenue(ctx, restaurant.AnalyticsQuery{})
		if err != nil {
			return nil, err
		}
		heatmap, err := e.source.HourlyHeatmap(ctx, restaurant.AnalyticsQuery{})
		if err != nil {
			return nil, err
		}
		return []Table{CategoryTable(categories), PeakHoursTable(heatmap), OutcomeTable(history.Rows)}, nil
	}
	return nil, errors.Wrapf(ErrUnknownReport, "%q", code)
}
