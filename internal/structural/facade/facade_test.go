package facade

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullPerformanceReport_AggregatesAllMediums(t *testing.T) {
	dashboard := NewDashboard("user", "token")

	var buf bytes.Buffer
	report := dashboard.FullPerformanceReport(&buf)

	require.Equal(t, "radio: 300K listeners; video: 1.2M impressions", report)

	out := buf.String()
	require.Contains(t, out, "Getting radio performance report...")
	require.Contains(t, out, "Getting video performance report...")
	require.Contains(t, out, "Compiling aggregate report...")
	require.Contains(t, out, "Done!")

	// Medium order is stable across runs.
	require.Less(t,
		strings.Index(out, "radio performance"),
		strings.Index(out, "video performance"))
}

func TestUpdateBudget_NarratesEveryStep(t *testing.T) {
	dashboard := NewDashboard("user", "token")

	var buf bytes.Buffer
	dashboard.UpdateBudget(&buf, "video", 0.8)

	out := buf.String()
	steps := []string{
		"Updating budget for video campaigns...",
		"Generating spendings report...",
		"Sending spendings report to the accounts team...",
		"Generating new budget with weight recalculations...",
		"Sending new budget to the campaigns team...",
		"Done!",
	}
	last := -1
	for _, step := range steps {
		idx := strings.Index(out, step)
		require.Greater(t, idx, last, "step out of order: %s", step)
		last = idx
	}
}

func TestUpdateBudget_FlowsThroughAccounts(t *testing.T) {
	dashboard := NewDashboard("user", "token")

	var buf bytes.Buffer
	dashboard.UpdateBudget(&buf, "video", 0.8)

	// Spend 52000 at weight 0.8 lands on the campaign API.
	video := dashboard.campaignAPIs["video"].(*VideoCampaignAPI)
	require.InDelta(t, 41600, video.budget, 0.001)
	require.InDelta(t, 52000, dashboard.accountsAPI.spending["video"], 0.001)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	out := buf.String()
	require.Contains(t, out, "Aggregate report: radio: 300K listeners; video: 1.2M impressions")
	require.Contains(t, out, "Updating budget for video campaigns...")
	require.Contains(t, out, "Updating budget for radio campaigns...")
}
