package middleware

import (
	"campus-lostfound/pkg/log"
	"campus-lostfound/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "user_email"
)

type Middleware struct {
	l           log.Logger
	tokens      token.Manager
	rateLimiter *rateLimiter
}

func New(l log.Logger, tokens token.Manager, ratePerMin int) Middleware {
	return Middleware{
		l:           l,
		tokens:      tokens,
		rateLimiter: newRateLimiter(ratePerMin),
	}
}
