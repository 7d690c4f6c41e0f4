package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	ruleStyle   = lipgloss.NewStyle().Faint(true)
)

// Text renders the report as an aligned terminal table.
func (r *Report) Text() string {
	var b strings.Builder

	if r.Wordlist != "" {
		fmt.Fprintf(&b, "%s %s  (%d words)\n", titleStyle.Render("Wordlist:"), r.Wordlist, r.Total)
	} else {
		fmt.Fprintf(&b, "%s %d words\n", titleStyle.Render("Total:"), r.Total)
	}
	if r.Source != "" {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Lexicon: "), r.Source)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%-16s %8s %7s  %s", "Zipf Range", "Count", "%", "Sample Words")))
	b.WriteString(ruleStyle.Render(strings.Repeat("─", 90)) + "\n")
	for _, bucket := range r.Buckets {
		fmt.Fprintf(&b, "%-16s %8d %6.1f%%  %s\n",
			bucket.Label, bucket.Count, bucket.Percent, strings.Join(bucket.Samples, ", "))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%-20s %12s %15s", "Threshold (>=)", "Words Kept", "% of Original")))
	b.WriteString(ruleStyle.Render(strings.Repeat("─", 50)) + "\n")
	for _, sweep := range r.Sweep {
		fmt.Fprintf(&b, "Zipf >= %-12.4g %12d %14.1f%%\n", sweep.Threshold, sweep.Kept, sweep.Percent)
	}

	return b.String()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}
