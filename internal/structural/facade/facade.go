// Package facade demonstrates the facade pattern: a campaign dashboard
// exposing two simple operations over the per-medium campaign APIs and the
// accounts API hiding behind it.
package facade

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// CampaignAPI is the interface every campaign team's API exposes.
type CampaignAPI interface {
	PerformanceReport() string
	SpendReport() float64
	UpdateBudget(budget float64)
}

// VideoCampaignAPI connects to the video campaigns team.
type VideoCampaignAPI struct {
	budget float64
}

func (a *VideoCampaignAPI) PerformanceReport() string   { return "video: 1.2M impressions" }
func (a *VideoCampaignAPI) SpendReport() float64        { return 52000 }
func (a *VideoCampaignAPI) UpdateBudget(budget float64) { a.budget = budget }

// RadioCampaignAPI connects to the radio campaigns team.
type RadioCampaignAPI struct {
	budget float64
}

func (a *RadioCampaignAPI) PerformanceReport() string   { return "radio: 300K listeners" }
func (a *RadioCampaignAPI) SpendReport() float64        { return 18000 }
func (a *RadioCampaignAPI) UpdateBudget(budget float64) { a.budget = budget }

// AccountsAPI connects to the accounts team. Its interface differs from the
// campaign APIs; the dashboard hides that mismatch.
type AccountsAPI struct {
	spending map[string]float64
}

// NewAccountsAPI creates an accounts client with no reported spending.
func NewAccountsAPI() *AccountsAPI {
	return &AccountsAPI{spending: make(map[string]float64)}
}

// ReportSpending records a medium's spending with the accounts team.
func (a *AccountsAPI) ReportSpending(medium string, spending float64) {
	a.spending[medium] = spending
}

// NewBudget computes next period's budget for a medium from its reported
// spending and the allocation weight.
func (a *AccountsAPI) NewBudget(medium string, weight float64) float64 {
	return a.spending[medium] * weight
}

// Dashboard is the facade. Building one authenticates and connects to all
// the team APIs so the user only ever sees two methods.
type Dashboard struct {
	campaignAPIs map[string]CampaignAPI
	accountsAPI  *AccountsAPI
}

// NewDashboard authenticates the user and wires up the team APIs.
func NewDashboard(user, token string) *Dashboard {
	d := &Dashboard{
		campaignAPIs: map[string]CampaignAPI{
			"video": &VideoCampaignAPI{},
			"radio": &RadioCampaignAPI{},
		},
		accountsAPI: NewAccountsAPI(),
	}
	d.authenticate(user, token)
	return d
}

// FullPerformanceReport aggregates performance data from every campaign
// team, narrating each step.
func (d *Dashboard) FullPerformanceReport(w io.Writer) string {
	reports := make([]string, 0, len(d.campaignAPIs))
	for _, medium := range d.media() {
		fmt.Fprintf(w, "Getting %s performance report...\n", medium)
		reports = append(reports, d.campaignAPIs[medium].PerformanceReport())
	}

	fmt.Fprintln(w, "Compiling aggregate report...")
	compiled := d.aggregateReport(reports)

	fmt.Fprintln(w, "Done!")
	fmt.Fprintln(w)
	return compiled
}

// UpdateBudget runs a medium's spend report through the accounts team and
// pushes the recalculated budget back to the campaign team.
func (d *Dashboard) UpdateBudget(w io.Writer, medium string, weight float64) {
	fmt.Fprintf(w, "Updating budget for %s campaigns...\n", medium)

	fmt.Fprintln(w, "Generating spendings report...")
	spendReport := d.campaignAPIs[medium].SpendReport()

	fmt.Fprintln(w, "Sending spendings report to the accounts team...")
	d.accountsAPI.ReportSpending(medium, spendReport)

	fmt.Fprintln(w, "Generating new budget with weight recalculations...")
	newBudget := d.accountsAPI.NewBudget(medium, weight)

	fmt.Fprintln(w, "Sending new budget to the campaigns team...")
	d.campaignAPIs[medium].UpdateBudget(newBudget)

	fmt.Fprintln(w, "Done!")
	fmt.Fprintln(w)
}

// media returns the campaign mediums in a stable order so the narration is
// deterministic.
func (d *Dashboard) media() []string {
	media := make([]string, 0, len(d.campaignAPIs))
	for medium := range d.campaignAPIs {
		media = append(media, medium)
	}
	sort.Strings(media)
	return media
}

func (d *Dashboard) authenticate(user, token string) {
	// Connection setup would live in the API wrappers in a real system.
}

func (d *Dashboard) aggregateReport(reports []string) string {
	return strings.Join(reports, "; ")
}
