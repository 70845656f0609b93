package usecase

import (
	"campus-lostfound/internal/matching/repository"
	"campus-lostfound/pkg/log"
)

// implUseCase is the private implementation of matching.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new matching UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
