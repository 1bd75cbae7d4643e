package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/pco"
)

type teamResolver struct {
	client   pco.Client
	observer UseCaseObserver
}

func NewTeamResolver(client pco.Client, observers ...UseCaseObserver) TeamResolver {
	return &teamResolver{
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ResolveAssignments loads the plan's team and keeps confirmed assignments
// to recognized roles. A failed fetch leaves every role unassigned and is
// reported through FetchErr and Warnings.
func (s *teamResolver) ResolveAssignments(ctx context.Context, planID domain.PlanID) *app.TeamResponse {
	start := time.Now()
	fields := map[string]any{"plan_id": string(planID)}
	resp := &app.TeamResponse{PlanID: planID}

	page, err := s.client.ListTeamMembers(ctx, planID)
	if err != nil {
		fetchErr := &app.BulletinError{
			Code:    app.ErrAssignmentFetchFailed,
			Message: fetchFailureMessage("team members", err),
			Err:     err,
		}
		resp.Assignments = ReconcileAssignments(nil)
		resp.FetchErr = fetchErr
		resp.Warnings = append(resp.Warnings, fetchErr.Message)
		observe(ctx, s.observer, "resolve_team", start, true, fetchErr, fields)
		return resp
	}

	resp.Assignments = ReconcileAssignments(page.Records)
	if page.HasNext {
		// Only the first page is read.
		resp.Warnings = append(resp.Warnings, "team list has more pages than were read; some assignments may be missing")
	}

	fields["records"] = len(page.Records)
	observe(ctx, s.observer, "resolve_team", start, true, nil, fields)
	return resp
}

// ReconcileAssignments folds team records into the role taxonomy. Only
// confirmed records naming a recognized role count, and a later record for
// a role replaces an earlier one.
func ReconcileAssignments(records []domain.TeamAssignment) app.Assignments {
	assigned := make(map[domain.Role]string)
	for _, rec := range records {
		if !rec.IsConfirmed() {
			continue
		}
		role, ok := domain.ParseRole(rec.PositionName)
		if !ok {
			continue
		}
		assigned[role] = rec.Name
	}

	roles := domain.Roles()
	out := make(app.Assignments, 0, len(roles))
	for _, role := range roles {
		out = append(out, app.RoleAssignment{Role: role, Name: assigned[role]})
	}
	return out
}
