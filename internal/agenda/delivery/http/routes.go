package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	calendars := rg.Group("/calendars")
	{
		calendars.POST("", h.CreateCalendar)
		calendars.GET("", h.ListCalendars)
		calendars.PUT("/:name", h.EditCalendar)
		calendars.POST("/:name/use", h.UseCalendar)

		calendars.POST("/:name/events", h.CreateEvent)
		calendars.PATCH("/:name/events", h.EditEvents)
		calendars.GET("/:name/events", h.ListEvents)
		calendars.GET("/:name/status", h.Status)

		calendars.POST("/:name/copy/event", h.CopyEvent)
		calendars.POST("/:name/copy/date", h.CopyEventsOn)
		calendars.POST("/:name/copy/range", h.CopyEventsBetween)

		calendars.GET("/:name/export", h.ExportCSV)
		calendars.POST("/:name/import", h.ImportCSV)
	}
}
