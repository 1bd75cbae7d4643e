package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/pco"
)

type planResolver struct {
	client   pco.Client
	observer UseCaseObserver
}

func NewPlanResolver(client pco.Client, observers ...UseCaseObserver) PlanResolver {
	return &planResolver{
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ResolveLatestPlan returns the first plan sorted on or after 10:00 on
// today's date. When the lookup fails or finds nothing the error is a
// BulletinError with code ErrNoPlanFound, which callers treat as "nothing
// to report" rather than a failure.
func (s *planResolver) ResolveLatestPlan(ctx context.Context, today time.Time) (*domain.Plan, error) {
	start := time.Now()
	fields := map[string]any{"after": pco.AfterTimestamp(today)}

	page, err := s.client.ListPlansAfter(ctx, today)
	if err != nil {
		noPlan := &app.BulletinError{
			Code:    app.ErrNoPlanFound,
			Message: fetchFailureMessage("latest plan", err),
			Err:     err,
		}
		observe(ctx, s.observer, "resolve_plan", start, true, noPlan, fields)
		return nil, noPlan
	}

	if len(page.Records) == 0 {
		noPlan := &app.BulletinError{Code: app.ErrNoPlanFound, Message: "no plans found"}
		observe(ctx, s.observer, "resolve_plan", start, true, noPlan, fields)
		return nil, noPlan
	}

	plan := page.Records[0]
	fields["plan_id"] = string(plan.ID)
	observe(ctx, s.observer, "resolve_plan", start, true, nil, fields)
	return &plan, nil
}

func fetchFailureMessage(what string, err error) string {
	if code := pco.StatusCode(err); code != 0 {
		return fmt.Sprintf("failed to fetch %s: %d", what, code)
	}
	return "failed to fetch " + what
}
