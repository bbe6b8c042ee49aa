package service

import "context"

// StaticReporter serves the fixed visitor and sales series the dashboard has
// always shipped with. It stands in until a real reporting pipeline exists.
type StaticReporter struct{}

func (StaticReporter) TotalSales(ctx context.Context) int64 {
	return 34855
}

func (StaticReporter) Visitors(ctx context.Context) []VisitorBreakdown {
	return []VisitorBreakdown{
		{Label: "Social media", Percentage: 30},
		{Label: "Purchased visitors", Percentage: 40},
		{Label: "By advertisement", Percentage: 18},
		{Label: "Affiliate visitors", Percentage: 12},
	}
}

func (StaticReporter) Sales(ctx context.Context) map[string][]SalesPoint {
	return map[string][]SalesPoint{
		"thisMonth": {
			{Label: "Jan", Data: 800}, {Label: "Feb", Data: 700},
			{Label: "Mar", Data: 800}, {Label: "Apr", Data: 900},
			{Label: "May", Data: 600}, {Label: "Jun", Data: 700},
			{Label: "Jul", Data: 700}, {Label: "Aug", Data: 600},
			{Label: "Sep", Data: 500}, {Label: "Oct", Data: 500},
			{Label: "Nov", Data: 400}, {Label: "Dec", Data: 500},
		},
		"lastMonth": {
			{Label: "Jan", Data: 400}, {Label: "Feb", Data: 500},
			{Label: "Mar", Data: 500}, {Label: "Apr", Data: 600},
			{Label: "May", Data: 500}, {Label: "Jun", Data: 400},
			{Label: "Jul", Data: 300}, {Label: "Aug", Data: 300},
			{Label: "Sep", Data: 200}, {Label: "Oct", Data: 300},
			{Label: "Nov", Data: 400}, {Label: "Dec", Data: 300},
		},
	}
}
