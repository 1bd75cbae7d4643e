package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func TestFormatBulletin_Golden(t *testing.T) {
	team := &app.TeamResponse{
		PlanID: "81234567",
		Assignments: app.Assignments{
			{Role: domain.RolePreacher, Name: "Jane Doe"},
			{Role: domain.RoleServiceLeader, Name: "John Roe"},
			{Role: domain.RolePastoralPrayer},
			{Role: domain.RoleScriptureReader},
			{Role: domain.RoleConfessionOfFaith},
			{Role: domain.RoleCatechism},
			{Role: domain.RoleConfessionOfSin},
			{Role: domain.RoleLordsSupperLeader},
		},
	}
	blocks := []app.RenderedBlock{
		{Kind: app.BlockSong, Heading: "SONG: Be Thou My Vision"},
		{Kind: app.BlockContent, Heading: "Call to Worship", Sections: []app.Section{
			{Label: "Description", Lines: []string{"Psalm 95:1-7"}},
		}},
		{Kind: app.BlockContent, Heading: "Sermon", Sections: []app.Section{
			{Label: "Description", Lines: []string{"Romans 8:1-11"}},
			{Label: "Details", Lines: []string{"Point One", "Point Two"}},
		}},
	}

	var b strings.Builder
	b.WriteString(FormatTeam(team, domain.NameTitles{"Jane Doe": "Elder"}))
	for _, block := range blocks {
		b.WriteString(FormatBlock(block))
	}
	b.WriteString(FormatChecklist(domain.Checklist()))

	goldenTest(t, "bulletin", b.String())
}

func TestFormatBanner_Golden(t *testing.T) {
	goldenTest(t, "banner", FormatBanner())
}
