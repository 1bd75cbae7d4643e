package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/cli/formatter"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(a *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print the full bulletin: team, order of service and checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulletin(cmd, a, opts)
		},
	}
}

func runBulletin(cmd *cobra.Command, a *App, opts *rootOptions) error {
	if a.CredentialsErr != nil {
		return a.CredentialsErr
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatBanner())

	req := app.NewBulletinRequest()
	today := a.today(opts)
	req.Today = &today

	stop := func() {}
	if a.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Contacting Planning Center")
	}
	resp, err := a.Bulletin.Build(cmd.Context(), req)
	stop()

	if resp != nil {
		fmt.Fprint(out, formatter.FormatWarnings(resp.Warnings))
		if !resp.PlanFound() {
			fmt.Fprint(out, formatter.FormatNoPlan())
		} else {
			fmt.Fprint(out, formatter.FormatPlan(resp.Plan))
			fmt.Fprint(out, formatter.FormatTeam(resp.Team, a.NameTitles))
			if resp.Items != nil {
				for block := range resp.Items {
					fmt.Fprint(out, formatter.FormatBlock(block))
				}
			}
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, formatter.FormatChecklist(domain.Checklist()))
	return nil
}

func newPlanCmd(a *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the upcoming plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, ok, err := resolvePlan(cmd, a, opts)
			if err != nil || !ok {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}
}

func newTeamCmd(a *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "Show confirmed team members for the upcoming plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, ok, err := resolvePlan(cmd, a, opts)
			if err != nil || !ok {
				return err
			}
			team := a.Team.ResolveAssignments(cmd.Context(), plan.ID)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatWarnings(team.Warnings))
			fmt.Fprint(out, formatter.FormatTeam(team, a.NameTitles))
			return nil
		},
	}
}

func newItemsCmd(a *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "Show the order of service for the upcoming plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, ok, err := resolvePlan(cmd, a, opts)
			if err != nil || !ok {
				return err
			}
			blocks, err := a.Items.RenderItems(cmd.Context(), plan.ID)
			if err != nil {
				return err
			}
			for block := range blocks {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBlock(block))
			}
			return nil
		},
	}
}

// resolvePlan looks up the plan for the selected week. When there is none
// it prints the reason and reports ok=false without an error.
func resolvePlan(cmd *cobra.Command, a *App, opts *rootOptions) (*domain.Plan, bool, error) {
	if a.CredentialsErr != nil {
		return nil, false, a.CredentialsErr
	}
	plan, err := a.Plans.ResolveLatestPlan(cmd.Context(), a.today(opts))
	if err != nil {
		if !app.HasCode(err, app.ErrNoPlanFound) {
			return nil, false, err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, formatter.FormatWarnings([]string{noPlanReason(err)}))
		fmt.Fprint(out, formatter.FormatNoPlan())
		return nil, false, nil
	}
	return plan, true, nil
}

func noPlanReason(err error) string {
	var be *app.BulletinError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}
