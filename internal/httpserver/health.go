package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"extensible-calendar/pkg/response"
)

const (
	HealthMessage = "Calendar API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "extensible-calendar"
)

func (srv HTTPServer) probeBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probeBody("healthy"))
}

// readyCheck reports the loaded calendars. It fails while the agenda
// cannot list them.
// @Summary Readiness Check
// @Description Reports how many calendars are loaded and which one is current
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := srv.agendaUC.ListCalendars(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "calendars unavailable",
		})
		return
	}

	body := srv.probeBody("ready")
	body["calendars"] = len(out.Calendars)
	body["current"] = out.Current
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": ServiceName})
}
