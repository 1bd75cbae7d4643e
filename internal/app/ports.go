package app

import (
	"context"
	"iter"
	"time"

	"github.com/alexanderramin/bulletin/internal/domain"
)

type PlanResolverUseCase interface {
	ResolveLatestPlan(ctx context.Context, today time.Time) (*domain.Plan, error)
}

type TeamUseCase interface {
	ResolveAssignments(ctx context.Context, planID domain.PlanID) *TeamResponse
}

type ItemsUseCase interface {
	RenderItems(ctx context.Context, planID domain.PlanID) (iter.Seq[RenderedBlock], error)
}

type BulletinUseCase interface {
	Build(ctx context.Context, req BulletinRequest) (*BulletinResponse, error)
}
