package formatter

import (
	"strings"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/domain"
)

const (
	indent       = "  "
	detailIndent = "    "
)

var bannerArt = []string{
	`.-----------------------------------------------------.`,
	`| ____  _____ ____   ____        _ _      _   _       |`,
	`||  _ \|  ___/ ___| | __ ) _   _| | | ___| |_(_)_ __  |`,
	`|| |_) | |_ | |     |  _ \| | | | | |/ _ \ __| | '_ \ |`,
	`||  _ <|  _|| |___  | |_) | |_| | | |  __/ |_| | | | ||`,
	`||_| \_\_|   \____| |____/ \__,_|_|_|\___|\__|_|_| |_||`,
	`'-----------------------------------------------------'`,
}

// FormatBanner returns the program banner and the fetch notice.
func FormatBanner() string {
	var b strings.Builder
	for _, line := range bannerArt {
		b.WriteString(StylePurple.Render(line) + "\n")
	}
	b.WriteString("\n" + Dim("Fetching data from Planning Center...") + "\n")
	return b.String()
}

// FormatPlan describes the resolved plan in one line.
func FormatPlan(plan *domain.Plan) string {
	parts := []string{"Plan " + string(plan.ID)}
	if plan.Dates != "" {
		parts = append(parts, plan.Dates)
	}
	if plan.SeriesTitle != "" {
		parts = append(parts, plan.SeriesTitle)
	}
	if plan.Title != "" {
		parts = append(parts, plan.Title)
	}
	return "\n" + Dim(strings.Join(parts, " · ")) + "\n"
}

// FormatNoPlan is printed when there is no upcoming plan.
func FormatNoPlan() string {
	return "\n" + StyleYellow.Render("No valid plan ID found.") + "\n"
}

// FormatWarnings renders diagnostics for degraded steps.
func FormatWarnings(warnings []string) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(indent+"WARNING: "+w) + "\n")
	}
	return b.String()
}

// FormatTeam renders the confirmed team section.
func FormatTeam(team *app.TeamResponse, titles domain.NameTitles) string {
	var b strings.Builder
	b.WriteString("\n" + Banner("Confirmed Team Members") + "\n")
	for i, line := range team.Assignments.Lines(titles) {
		role, name, _ := strings.Cut(line, ": ")
		style := StyleFg
		if team.Assignments[i].Name == "" {
			style = StyleDim
		}
		b.WriteString(indent + Bold(role+":") + " " + style.Render(name) + "\n")
	}
	return b.String()
}

// FormatBlock renders one service item with its sub-blocks.
func FormatBlock(block app.RenderedBlock) string {
	var b strings.Builder
	b.WriteString("\n" + BlockStyle(block.Kind).Render("=== "+block.Heading+" ===") + "\n")
	for _, sec := range block.Sections {
		b.WriteString("\n" + indent + Bold(sec.Label+":") + "\n\n")
		for _, line := range sec.Lines {
			b.WriteString(detailIndent + line + "\n")
		}
	}
	return b.String()
}

// FormatChecklist renders the weekly checklist.
func FormatChecklist(items []string) string {
	var b strings.Builder
	b.WriteString("\n" + Banner("Weekly Bulletin Checklist") + "\n\n")
	for _, item := range items {
		b.WriteString(" - " + item + "\n")
	}
	return b.String()
}

// FormatChecklistRemaining summarizes an interactive checklist session.
func FormatChecklistRemaining(remaining []string) string {
	if len(remaining) == 0 {
		return "\n" + StyleGreen.Render("✔ Checklist complete.") + "\n"
	}
	var b strings.Builder
	b.WriteString("\n" + Banner("Still To Do") + "\n\n")
	for _, item := range remaining {
		b.WriteString(" - " + StyleYellow.Render(item) + "\n")
	}
	return b.String()
}
