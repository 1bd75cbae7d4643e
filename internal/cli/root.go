package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/service"
	"github.com/spf13/cobra"
)

// QuietLevel is above every level the program logs at, so nothing is
// written until --verbose lowers it.
const QuietLevel = slog.LevelError + 4

// App holds references to all services used by CLI commands.
type App struct {
	Plans    service.PlanResolver
	Team     service.TeamResolver
	Items    service.ItemRenderer
	Bulletin service.BulletinService

	NameTitles domain.NameTitles

	// CredentialsErr is returned by commands that need the API when the
	// startup configuration was incomplete.
	CredentialsErr error

	// LogLevel, when set, is lowered to Info by --verbose.
	LogLevel *slog.LevelVar

	IsInteractive func() bool

	// Now overrides the clock used to pick the service week.
	Now func() time.Time
}

type rootOptions struct {
	date    dateValue
	verbose bool
}

// NewRootCmd creates the top-level "bulletin" command. Run without a
// subcommand it prints the whole bulletin.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bulletin",
		Short:         "Weekly bulletin preparation from Planning Center",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose && app.LogLevel != nil {
				app.LogLevel.Set(slog.LevelInfo)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulletin(cmd, app, opts)
		},
	}

	root.PersistentFlags().Var(&opts.date, "date", "Service week to report on, as YYYY-MM-DD (default today)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log API calls and pipeline steps to stderr")

	root.AddCommand(
		newRunCmd(app, opts),
		newPlanCmd(app, opts),
		newTeamCmd(app, opts),
		newItemsCmd(app, opts),
		newChecklistCmd(app),
	)

	return root
}

// today returns the date selected by --date, or the current day.
func (a *App) today(opts *rootOptions) time.Time {
	if opts.date.set {
		return opts.date.t
	}
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
