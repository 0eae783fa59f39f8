package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gossipscan/internal/domain"
)

// Summary carries the aggregates of one run for the summary file.
type Summary struct {
	GeneratedAt  time.Time
	TotalSampled int
	Sanctioned   int
	Tally        *domain.CountryTally
}

// NonCompliancePercent is the share of sanctioned nodes in the run, exactly
// zero when nothing was sampled.
func (s Summary) NonCompliancePercent() float64 {
	if s.TotalSampled == 0 {
		return 0
	}
	return float64(s.Sanctioned) / float64(s.TotalSampled) * 100
}

// highlightCountries is the fixed block always present in the summary, shown
// with zero counts when a code was not observed.
var highlightCountries = []struct {
	flag string
	code string
	name string
}{
	{"🇺🇸", "US", "USA"},
	{"🇩🇪", "DE", "Germany"},
	{"🇷🇺", "RU", "Russia"},
	{"🇮🇷", "IR", "Iran"},
	{"🇰🇵", "KP", "North Korea"},
}

const summaryRule = "---------------------------------------"

// WriteSummary overwrites the summary file with the report for the given
// run. Unlike the scan log the summary reflects only the most recent run.
func (w *Writer) WriteSummary(summary Summary) error {
	if summary.Tally == nil {
		summary.Tally = domain.NewCountryTally()
	}

	lines := []string{
		"--- Solana Gossip Node Scan Summary ---",
		"Date: " + summary.GeneratedAt.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("Total Nodes Sampled: %d", summary.TotalSampled),
		summaryRule,
		fmt.Sprintf("Sanctioned Nodes (OFAC): %d", summary.Sanctioned),
		fmt.Sprintf("Non-Compliance Percentage: %.2f%%", summary.NonCompliancePercent()),
		summaryRule,
		"Top Countries:",
	}

	for _, country := range highlightCountries {
		lines = append(lines, fmt.Sprintf("  %s %s (%s): %d", country.flag, country.code, country.name, summary.Tally.Count(country.code)))
	}
	// Total minus the whole tally, not the non highlight remainder.
	lines = append(lines, fmt.Sprintf("  Other: %d", summary.TotalSampled-summary.Tally.Total()))

	lines = append(lines, summaryRule, "Full Country Breakdown:")
	for _, entry := range summary.Tally.Entries() {
		lines = append(lines, fmt.Sprintf("  %s: %d", entry.CountryCode, entry.Count))
	}

	return os.WriteFile(w.summaryPath, []byte(strings.Join(lines, "\n")), 0o644)
}
