package cli

import (
	"bytes"
	"log/slog"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/config"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/pco"
	"github.com/alexanderramin/bulletin/internal/service"
	"github.com/alexanderramin/bulletin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	fixedNow    = time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)
)

// testApp wires a full App against a fake Planning Center API.
func testApp(t *testing.T) (*App, *testutil.FakePCO) {
	t.Helper()
	fake := testutil.NewFakePCO(t)

	cfg := pco.DefaultConfig()
	cfg.BaseURL = fake.URL()
	cfg.ServiceTypeID = testutil.FakeServiceTypeID
	cfg.AppID = "app"
	cfg.Secret = "secret"
	cfg.Timeout = 2 * time.Second
	client := pco.NewClient(cfg, pco.NoopObserver{})

	plans := service.NewPlanResolver(client)
	team := service.NewTeamResolver(client)
	items := service.NewItemRenderer(client)

	return &App{
		Plans:      plans,
		Team:       team,
		Items:      items,
		Bulletin:   service.NewBulletinService(plans, team, items),
		NameTitles: domain.NameTitles{"Jane Doe": "Elder"},
		Now:        func() time.Time { return fixedNow },
	}, fake
}

func seedPlan(fake *testutil.FakePCO) {
	fake.Plans = []testutil.Record{testutil.NewPlanRecord("81234567", fixedNow.AddDate(0, 0, 2))}
	fake.TeamMembers = []testutil.Record{
		testutil.NewTeamMemberRecord("C", "Preacher", "Jane Doe"),
		testutil.NewTeamMemberRecord("U", "Service Leader", "Unconfirmed Person"),
		testutil.NewTeamMemberRecord("C", "Organist", "Pat Keys"),
	}
	fake.Items = []testutil.Record{
		testutil.NewItemRecord("header", "Worship"),
		testutil.NewItemRecord("song", "Prelude", testutil.WithServicePosition("pre")),
		testutil.NewItemRecord("song", "Be Thou My Vision"),
		testutil.NewItemRecord("item", "Sermon",
			testutil.WithDescription("Romans 8:1-11"),
			testutil.WithHTMLDetails("<p>Point One</p><p>Point Two</p>"),
		),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

// --- full bulletin ---

func TestRootCmd_FullBulletin(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)

	out, err := executeCmd(t, a)
	require.NoError(t, err)

	assert.Contains(t, out, "Fetching data from Planning Center...")
	assert.Contains(t, out, "Plan 81234567")
	assert.Contains(t, out, "  Preacher: Jane Doe (Elder)\n")
	assert.Contains(t, out, "  Service Leader: None\n")
	assert.NotContains(t, out, "Unconfirmed Person")
	assert.NotContains(t, out, "Pat Keys")
	assert.NotContains(t, out, "Worship ===")
	assert.NotContains(t, out, "Prelude")
	assert.Contains(t, out, "=== SONG: Be Thou My Vision ===\n")
	assert.Contains(t, out, "=== Sermon ===\n\n  Description:\n\n    Romans 8:1-11\n\n  Details:\n\n    Point One\n    Point Two\n")
	assert.Contains(t, out, "=== Weekly Bulletin Checklist ===")
	assert.Contains(t, out, " - Alert Pastor for review\n")
}

func TestRunCmd_MatchesRoot(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)

	rootOut, err := executeCmd(t, a)
	require.NoError(t, err)
	runOut, err := executeCmd(t, a, "run")
	require.NoError(t, err)
	assert.Equal(t, rootOut, runOut)
}

func TestRootCmd_NoPlan(t *testing.T) {
	a, fake := testApp(t)

	out, err := executeCmd(t, a)
	require.NoError(t, err)

	assert.Contains(t, out, "WARNING: no plans found")
	assert.Contains(t, out, "No valid plan ID found.")
	assert.Contains(t, out, "=== Weekly Bulletin Checklist ===")
	assert.NotContains(t, out, "Confirmed Team Members")
	assert.Len(t, fake.Requests(), 1)
}

func TestRootCmd_TeamFailureStillPrintsItems(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)
	fake.TeamMembersStatus = http.StatusInternalServerError

	out, err := executeCmd(t, a)
	require.NoError(t, err)

	assert.Contains(t, out, "WARNING: failed to fetch team members: 500")
	assert.Contains(t, out, "  Preacher: None\n")
	assert.Contains(t, out, "=== SONG: Be Thou My Vision ===")
}

func TestRootCmd_MalformedItemsFails(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)
	fake.ItemsBody = `{"errors":[]}`

	out, err := executeCmd(t, a)
	require.Error(t, err)
	assert.True(t, app.HasCode(err, app.ErrMalformedItems))

	assert.Contains(t, out, "Confirmed Team Members", "team is printed before the failure")
	assert.NotContains(t, out, "Weekly Bulletin Checklist")
}

func TestRootCmd_DateFlag(t *testing.T) {
	a, fake := testApp(t)

	_, err := executeCmd(t, a, "--date", "2026-12-24")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24T10:00:00Z", fake.Requests()[0].URL.Query().Get("after"))
}

func TestRootCmd_InvalidDate(t *testing.T) {
	a, _ := testApp(t)

	_, err := executeCmd(t, a, "--date", "Dec 24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestRootCmd_MissingCredentials(t *testing.T) {
	a, fake := testApp(t)
	a.CredentialsErr = config.DefaultConfig().Validate()

	_, err := executeCmd(t, a)
	assert.ErrorIs(t, err, config.ErrMissingCredentials)

	_, err = executeCmd(t, a, "team")
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
	assert.Empty(t, fake.Requests())
}

func TestRootCmd_VerboseLowersLogLevel(t *testing.T) {
	a, _ := testApp(t)
	a.LogLevel = new(slog.LevelVar)
	a.LogLevel.Set(QuietLevel)

	_, err := executeCmd(t, a, "checklist", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, a.LogLevel.Level())
}

// --- subcommands ---

func TestPlanCmd(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)

	out, err := executeCmd(t, a, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan 81234567")
	assert.Len(t, fake.Requests(), 1)
}

func TestPlanCmd_NoPlan(t *testing.T) {
	a, fake := testApp(t)
	fake.PlansStatus = http.StatusUnauthorized

	out, err := executeCmd(t, a, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "WARNING: failed to fetch latest plan: 401")
	assert.Contains(t, out, "No valid plan ID found.")
}

func TestTeamCmd(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)

	out, err := executeCmd(t, a, "team")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Confirmed Team Members ===")
	assert.Contains(t, out, "  Preacher: Jane Doe (Elder)\n")
	assert.Contains(t, out, "  Lord's Supper Leader: None\n")
	assert.NotContains(t, out, "SONG")
}

func TestItemsCmd(t *testing.T) {
	a, fake := testApp(t)
	seedPlan(fake)

	out, err := executeCmd(t, a, "items")
	require.NoError(t, err)
	assert.Contains(t, out, "=== SONG: Be Thou My Vision ===")
	assert.Contains(t, out, "    Point Two\n")
	assert.NotContains(t, out, "Confirmed Team Members")
}

func TestChecklistCmd(t *testing.T) {
	a, fake := testApp(t)

	out, err := executeCmd(t, a, "checklist")
	require.NoError(t, err)
	assert.Contains(t, out, " - Update sermon series title\n")
	assert.Contains(t, out, " - Save file in shared folder as `YYYY-MM-DD`\n")
	assert.Empty(t, fake.Requests())
}

func TestChecklistCmd_InteractiveNeedsTerminal(t *testing.T) {
	a, _ := testApp(t)
	a.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, a, "checklist", "--interactive")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestRemainingItems(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, remainingItems(items, []string{"b"}))
	assert.Nil(t, remainingItems(items, items))
	assert.Equal(t, items, remainingItems(items, nil))
}
