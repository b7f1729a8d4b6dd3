package facade

import (
	"context"
	"fmt"
	"io"
)

// Demo pulls an aggregated performance report through the dashboard, then
// reallocates the budgets it would inform.
func Demo(ctx context.Context, w io.Writer) error {
	dashboard := NewDashboard("sample.manager@samplecompany.com", "xxxxxx")

	report := dashboard.FullPerformanceReport(w)
	fmt.Fprintf(w, "Aggregate report: %s\n\n", report)

	dashboard.UpdateBudget(w, "video", 0.8)
	dashboard.UpdateBudget(w, "radio", 0.2)
	return nil
}
