package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlan(t *testing.T) {
	out := stripANSI(FormatPlan(&domain.Plan{ID: "42", Dates: "October 18, 2026", SeriesTitle: "Romans"}))
	assert.Equal(t, "\nPlan 42 · October 18, 2026 · Romans\n", out)

	out = stripANSI(FormatPlan(&domain.Plan{ID: "42"}))
	assert.Equal(t, "\nPlan 42\n", out)
}

func TestFormatNoPlan(t *testing.T) {
	assert.Contains(t, stripANSI(FormatNoPlan()), "No valid plan ID found.")
}

func TestFormatWarnings(t *testing.T) {
	out := stripANSI(FormatWarnings([]string{"failed to fetch team members: 500"}))
	assert.Equal(t, "  WARNING: failed to fetch team members: 500\n", out)
	assert.Empty(t, FormatWarnings(nil))
}

func TestFormatTeam_PrintsAssignmentLines(t *testing.T) {
	team := &app.TeamResponse{Assignments: app.Assignments{
		{Role: domain.RolePreacher, Name: "Jane Doe"},
		{Role: domain.RoleServiceLeader, Name: "John Roe"},
		{Role: domain.RoleCatechism},
	}}
	titles := domain.NameTitles{"Jane Doe": "Elder"}

	var want strings.Builder
	want.WriteString("\n=== Confirmed Team Members ===\n")
	for _, line := range team.Assignments.Lines(titles) {
		want.WriteString("  " + line + "\n")
	}
	assert.Equal(t, want.String(), stripANSI(FormatTeam(team, titles)))
	assert.Contains(t, want.String(), "  Preacher: Jane Doe (Elder)\n")
	assert.Contains(t, want.String(), "  Catechism: None\n")
}

func TestFormatBlock_SongHasNoSections(t *testing.T) {
	out := stripANSI(FormatBlock(app.RenderedBlock{Kind: app.BlockSong, Heading: "SONG: Doxology"}))
	assert.Equal(t, "\n=== SONG: Doxology ===\n", out)
}

func TestFormatChecklistRemaining(t *testing.T) {
	assert.Contains(t, stripANSI(FormatChecklistRemaining(nil)), "Checklist complete")

	out := stripANSI(FormatChecklistRemaining([]string{"Alert Pastor for review"}))
	assert.Contains(t, out, "=== Still To Do ===")
	assert.Contains(t, out, " - Alert Pastor for review\n")
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Fetching")
	time.Sleep(200 * time.Millisecond)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "Fetching")
	assert.Contains(t, out, "\r\033[K")
}
