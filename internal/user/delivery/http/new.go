package http

import (
	"campus-lostfound/internal/user"
	"campus-lostfound/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
