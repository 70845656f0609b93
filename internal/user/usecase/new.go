package usecase

import (
	"campus-lostfound/internal/user"
	"campus-lostfound/internal/user/repository"
	"campus-lostfound/pkg/log"
	"campus-lostfound/pkg/token"
)

type implUseCase struct {
	repo   repository.Repository
	tokens token.Manager
	l      log.Logger
}

var _ user.UseCase = &implUseCase{}

func New(repo repository.Repository, tokens token.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		tokens: tokens,
		l:      l,
	}
}
