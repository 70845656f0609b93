package http

import (
	"campus-lostfound/internal/stats"
	"campus-lostfound/pkg/log"
)

type handler struct {
	l  log.Logger
	uc stats.UseCase
}

func New(l log.Logger, uc stats.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
