package ui

import (
	"fmt"
	"strings"

	"github.com/muurk/wificonfig/internal/wificonfig"
)

// RenderReport renders the outcome of wificonfig.Check. The box is red when
// any entry was rejected, orange when there are only warnings.
func RenderReport(report *wificonfig.Report, width int) string {
	var lines []string

	color := SuccessColor
	title := fmt.Sprintf("%s  %d network(s) accepted", SuccessMarker, len(report.Findings)-report.Rejected())
	if report.Rejected() > 0 {
		color = ErrorColor
		title = fmt.Sprintf("%s  %d of %d network(s) rejected", FailureMarker, report.Rejected(), len(report.Findings))
	} else if hasWarnings(report) {
		color = WarningColor
	}

	lines = append(lines, HeaderTitleStyle.Render(title), "")

	for _, f := range report.Findings {
		label := f.Credential.SSID
		if label == "" {
			label = "(empty SSID)"
		}
		entry := IndexStyle.Render(fmt.Sprintf("%d.", f.Index+1)) + SSIDStyle.Render(label)
		if f.Accepted() {
			lines = append(lines, AcceptedStyle.Render(SuccessMarker)+" "+entry)
		} else {
			lines = append(lines, RejectedStyle.Render(FailureMarker)+" "+entry)
			lines = append(lines, RejectedStyle.Render("      "+f.Err.Error()))
		}
		for _, w := range f.Warnings {
			lines = append(lines, WarningStyle.Render("      "+WarningMarker+" "+w))
		}
	}

	if len(report.Warnings) > 0 {
		lines = append(lines, "")
		for _, w := range report.Warnings {
			lines = append(lines, WarningStyle.Render(WarningMarker+" "+w))
		}
	}

	return BoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

func hasWarnings(report *wificonfig.Report) bool {
	if len(report.Warnings) > 0 {
		return true
	}
	for _, f := range report.Findings {
		if len(f.Warnings) > 0 {
			return true
		}
	}
	return false
}
