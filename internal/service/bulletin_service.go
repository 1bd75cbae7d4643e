package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/bulletin/internal/app"
)

type bulletinService struct {
	plans    PlanResolver
	team     TeamResolver
	items    ItemRenderer
	now      func() time.Time
	observer UseCaseObserver
}

func NewBulletinService(plans PlanResolver, team TeamResolver, items ItemRenderer, observers ...UseCaseObserver) BulletinService {
	return &bulletinService{
		plans:    plans,
		team:     team,
		items:    items,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Build runs the pipeline: resolve the plan, then its team, then its items.
// A missing plan or an unreadable team degrade the response and are listed
// in Warnings. An items failure is returned as an error together with the
// partial response built so far.
func (s *bulletinService) Build(ctx context.Context, req app.BulletinRequest) (*app.BulletinResponse, error) {
	start := time.Now()
	today := s.now()
	if req.Today != nil {
		today = *req.Today
	}

	resp := &app.BulletinResponse{}

	plan, err := s.plans.ResolveLatestPlan(ctx, today)
	if err != nil {
		var noPlan *app.BulletinError
		if !errors.As(err, &noPlan) || noPlan.Code != app.ErrNoPlanFound {
			observe(ctx, s.observer, "build_bulletin", start, false, err, nil)
			return nil, err
		}
		resp.Warnings = append(resp.Warnings, noPlan.Message)
		observe(ctx, s.observer, "build_bulletin", start, true, err, map[string]any{"plan_found": false})
		return resp, nil
	}
	resp.Plan = plan
	fields := map[string]any{"plan_found": true, "plan_id": string(plan.ID)}

	resp.Team = s.team.ResolveAssignments(ctx, plan.ID)
	resp.Warnings = append(resp.Warnings, resp.Team.Warnings...)

	items, err := s.items.RenderItems(ctx, plan.ID)
	if err != nil {
		observe(ctx, s.observer, "build_bulletin", start, false, err, fields)
		return resp, err
	}
	resp.Items = items

	observe(ctx, s.observer, "build_bulletin", start, true, nil, fields)
	return resp, nil
}
