package http

import (
	"campus-lostfound/internal/matching"
	"campus-lostfound/pkg/log"
)

type handler struct {
	l  log.Logger
	uc matching.UseCase
}

// New creates a new HTTP handler for the matching domain.
func New(l log.Logger, uc matching.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
