package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agendaHTTP "extensible-calendar/internal/agenda/delivery/http"
)

// setupAgendaDomain registers the calendar and event routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupAgendaDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := agendaHTTP.New(srv.l, srv.agendaUC)

	// Registers /api/v1/calendars/...
	agendaHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Agenda domain registered")
	return nil
}
