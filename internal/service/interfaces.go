package service

import "github.com/alexanderramin/bulletin/internal/app"

type PlanResolver interface {
	app.PlanResolverUseCase
}

type TeamResolver interface {
	app.TeamUseCase
}

type ItemRenderer interface {
	app.ItemsUseCase
}

type BulletinService interface {
	app.BulletinUseCase
}
