package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/pkg/reports"
)

// ReportInput selects a catalogue report and its compression.
type ReportInput struct {
	Code        string
	Compression string
}

type reportExporter interface {
	Export(ctx context.Context, req reports.Request) (reports.File, error)
}

// ReportQuery renders a downloadable report.
type ReportQuery struct {
	exporter reportExporter
}

// NewReportQuery builds the query.
func NewReportQuery(exporter reportExporter) *ReportQuery {
	return &ReportQuery{exporter: exporter}
}

var _ gocommand.Querier[ReportInput, reports.File] = (*ReportQuery)(nil)

// Query exports the report.
func (q *ReportQuery) Query(ctx context.Context, input ReportInput) (reports.File, error) {
	compression, err := reports.ParseCompression(input.Compression)
	if err != nil {
		return reports.File{}, err
	}
	return q.exporter.Export(ctx, reports.Request{Code: input.Code, Compression: compression})
}
