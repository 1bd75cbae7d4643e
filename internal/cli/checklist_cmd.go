package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/bulletin/internal/cli/formatter"
	"github.com/alexanderramin/bulletin/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("interactive checklist needs a terminal")

func newChecklistCmd(a *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Print the weekly bulletin checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := domain.Checklist()
			out := cmd.OutOrStdout()

			if !interactive {
				fmt.Fprint(out, formatter.FormatChecklist(items))
				return nil
			}
			if !a.interactive() {
				return errNotInteractive
			}

			done, err := runChecklistForm(cmd.InOrStdin(), out, items)
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatChecklistRemaining(remainingItems(items, done)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Tick off checklist items in the terminal")

	return cmd
}

func runChecklistForm(in io.Reader, out io.Writer, items []string) ([]string, error) {
	var done []string
	form := newChecklistForm(items, &done).
		WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))

	if err := form.Run(); err != nil {
		return nil, err
	}
	return done, nil
}

// newChecklistForm builds a single multi-select over items; ticked entries
// are written to done when the form completes.
func newChecklistForm(items []string, done *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weekly Bulletin Checklist").
				Description("Select the steps already finished").
				Options(huh.NewOptions(items...)...).
				Value(done),
		),
	)
}

// remainingItems returns items not in done, keeping checklist order.
func remainingItems(items, done []string) []string {
	finished := make(map[string]bool, len(done))
	for _, d := range done {
		finished[d] = true
	}
	var remaining []string
	for _, item := range items {
		if !finished[item] {
			remaining = append(remaining, item)
		}
	}
	return remaining
}
