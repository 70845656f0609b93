package usecase

import (
	"campus-lostfound/internal/stats"
	"campus-lostfound/internal/stats/repository"
	"campus-lostfound/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ stats.UseCase = &implUseCase{}

func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
