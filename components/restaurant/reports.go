package restaurant

// ReportFormat is the file format of an exported report.
type ReportFormat string

const (
	ReportCSV  ReportFormat = "csv"
	ReportXLSX ReportFormat = "xlsx"
)

// ReportDefinition describes one downloadable report.
type ReportDefinition struct {
	Code        string       `json:"code"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Format      ReportFormat `json:"format"`
}

// Report codes.
const (
	ReportDailySales        = "daily_sales"
	ReportWeeklyPerformance = "weekly_performance"
	ReportMonthlyRevenue    = "monthly_revenue"
)

// ReportCatalog lists the analytics downloads.
var ReportCatalog = []ReportDefinition{
	{Code: ReportDailySales, Title: "Daily Sales Summary", Description: "Orders and revenue per day.", Format: ReportCSV},
	{Code: ReportWeeklyPerformance, Title: "Weekly Performance Report", Description: "Category revenue, peak hours and order outcomes.", Format: ReportXLSX},
	{Code: ReportMonthlyRevenue, Title: "Monthly Revenue Breakdown", Description: "Revenue per month and payment method.", Format: ReportCSV},
}

// ReportFor looks up a report definition by code.
func ReportFor(code string) (ReportDefinition, bool) {
	for _, def := range ReportCatalog {
		if def.Code == code {
			return def, true
		}
	}
	return ReportDefinition{}, false
}
