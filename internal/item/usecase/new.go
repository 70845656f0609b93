package usecase

import (
	"campus-lostfound/internal/item/repository"
	"campus-lostfound/internal/matching"
	"campus-lostfound/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo    repository.Repository
	matcher matching.UseCase
	l       log.Logger
}

// New creates a new item UseCase implementation. matcher may be nil to
// disable discovery (tests).
func New(repo repository.Repository, matcher matching.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		matcher: matcher,
		l:       l,
	}
}
