package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "campus-lostfound/internal/item/delivery/http"
	itemRepo "campus-lostfound/internal/item/repository/sqlite"
	itemUC "campus-lostfound/internal/item/usecase"
	matchingHTTP "campus-lostfound/internal/matching/delivery/http"
	matchingRepo "campus-lostfound/internal/matching/repository/sqlite"
	matchingUC "campus-lostfound/internal/matching/usecase"
	"campus-lostfound/internal/middleware"
	statsHTTP "campus-lostfound/internal/stats/delivery/http"
	statsUC "campus-lostfound/internal/stats/usecase"
	userHTTP "campus-lostfound/internal/user/delivery/http"
	userRepo "campus-lostfound/internal/user/repository/sqlite"
	userUC "campus-lostfound/internal/user/usecase"
)

// setupDomains wires every domain in dependency order. The matching engine
// comes first because item creation triggers discovery and the stats
// aggregator reads through the matching repository.
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// Matching engine
	mRepo := matchingRepo.New(srv.db, srv.l)
	mUC := matchingUC.New(mRepo, srv.l)
	matchingHTTP.RegisterRoutes(api, matchingHTTP.New(srv.l, mUC), mw)

	// Item reports, with discovery on create
	iRepo := itemRepo.New(srv.db, srv.l)
	iUC := itemUC.New(iRepo, mUC, srv.l)
	itemHTTP.RegisterRoutes(api, itemHTTP.New(srv.l, iUC), mw)

	// Stats aggregator
	sUC := statsUC.New(mRepo, srv.l)
	statsHTTP.RegisterRoutes(api, statsHTTP.New(srv.l, sUC))

	// Accounts
	uRepo := userRepo.New(srv.db, srv.l)
	uUC := userUC.New(uRepo, srv.tokens, srv.l)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, uUC), mw)

	srv.l.Infof(ctx, "domains registered: matching, items, stats, users")
}
