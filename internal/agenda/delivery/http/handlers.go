package http

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/pkg/response"
)

// CreateCalendar godoc
// @Summary     Create a calendar
// @Description Creates an empty calendar with a unique name and an IANA timezone.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       body body createCalendarReq true "Calendar data"
// @Success     201  {object} calendarResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/calendars [POST]
func (h *handler) CreateCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateCalendar(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newCalendarResp(output.Calendar))
}

// ListCalendars godoc
// @Summary     List calendars
// @Tags        Calendars
// @Produce     json
// @Success     200 {object} listCalendarsResp
// @Router      /api/v1/calendars [GET]
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCalendars(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCalendars: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListCalendarsResp(output))
}

// EditCalendar godoc
// @Summary     Edit a calendar
// @Description Renames a calendar or changes its timezone. A timezone change keeps every event's instant.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       name path string          true "Calendar name"
// @Param       body body editCalendarReq true "Property and value"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/calendars/{name} [PUT]
func (h *handler) EditCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EditCalendar(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EditCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCalendarResp(output.Calendar))
}

// UseCalendar godoc
// @Summary     Select the current calendar
// @Tags        Calendars
// @Produce     json
// @Param       name path string true "Calendar name"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{name}/use [POST]
func (h *handler) UseCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.UseCalendar(ctx, c.Param("name")); err != nil {
		h.l.Warnf(ctx, "uc.UseCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// CreateEvent godoc
// @Summary     Create an event
// @Description Creates a timed event (start and end), a full-day event (date, or start only),
// @Description or a recurring series (repeat, e.g. "MWF for 6 times" or "TR until 2025-06-30").
// @Description A recurring series is added only if no occurrence conflicts.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       name path string         true "Calendar name"
// @Param       body body createEventReq true "Event data"
// @Success     201 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - overlaps an existing event"
// @Router      /api/v1/calendars/{name}/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newEventsResp(output.Calendar, output.Events))
}

// EditEvents godoc
// @Summary     Edit events
// @Description Sets name, description, location or public on one event (mode=single, needs start and end),
// @Description on a series from a start time (mode=from), or on every event with the name (mode=all).
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       name path string        true "Calendar name"
// @Param       body body editEventsReq true "Edit"
// @Success     200 {object} editEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{name}/events [PATCH]
func (h *handler) EditEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EditEvents(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EditEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, editEventsResp{Updated: output.Updated})
}

// ListEvents godoc
// @Summary     List events
// @Description Lists the events on a date, or the events overlapping start..end.
// @Tags        Events
// @Produce     json
// @Param       name  path  string true  "Calendar name"
// @Param       date  query string false "Date (YYYY-MM-DD or today/tomorrow/in N days/next monday)"
// @Param       start query string false "Range start (YYYY-MM-DDTHH:MM)"
// @Param       end   query string false "Range end (YYYY-MM-DDTHH:MM)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{name}/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var output agenda.EventsOutput
	if req.Date != "" {
		output, err = h.uc.EventsOn(ctx, agenda.EventsOnInput{Calendar: c.Param("name"), Date: req.Date})
	} else {
		output, err = h.uc.EventsInRange(ctx, agenda.EventsInRangeInput{Calendar: c.Param("name"), Start: req.Start, End: req.End})
	}
	if err != nil {
		h.l.Warnf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newEventsResp(output.Calendar, output.Events))
}

// Status godoc
// @Summary     Busy status
// @Description Reports whether any event covers the given time.
// @Tags        Events
// @Produce     json
// @Param       name path  string true "Calendar name"
// @Param       at   query string true "Time (YYYY-MM-DDTHH:MM)"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{name}/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Status(ctx, agenda.StatusInput{Calendar: c.Param("name"), At: req.At})
	if err != nil {
		h.l.Warnf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp(output))
}

// CopyEvent godoc
// @Summary     Copy one event
// @Description Copies the event with the given name and start into the target calendar at target_start,
// @Description read as wall-clock time in the target calendar's timezone.
// @Tags        Copy
// @Accept      json
// @Produce     json
// @Param       name path string       true "Source calendar name"
// @Param       body body copyEventReq true "Copy request"
// @Success     200 {object} copyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/calendars/{name}/copy/event [POST]
func (h *handler) CopyEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCopyEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CopyEvent(ctx, req.toInput(c.Param("name")))
	if err != nil {
		h.l.Warnf(ctx, "uc.CopyEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, copyResp{Copied: output.Copied})
}

// CopyEventsOn godoc
// @Summary     Copy a day's events
// @Description Copies every event starting on date to target_date in the target calendar.
// @Description Events copied before a conflict are kept.
// @Tags        Copy
// @Accept      json
// @Produce     json
// @Param       name path string      true "Source calendar name"
// @Param       body body copyDateReq true "Copy request"
// @Success     200 {object} copyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/calendars/{name}/copy/date [POST]
func (h *handler) CopyEventsOn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCopyDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CopyEventsOn(ctx, req.toInput(c.Param("name")))
	if err != nil {
		h.l.Warnf(ctx, "uc.CopyEventsOn: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"copied": output.Copied})
		return
	}

	response.OK(c, copyResp{Copied: output.Copied})
}

// CopyEventsBetween godoc
// @Summary     Copy events in a date range
// @Description Copies every event touching start_date..end_date onto target_date in the target calendar.
// @Description Events copied before a conflict are kept.
// @Tags        Copy
// @Accept      json
// @Produce     json
// @Param       name path string       true "Source calendar name"
// @Param       body body copyRangeReq true "Copy request"
// @Success     200 {object} copyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/calendars/{name}/copy/range [POST]
func (h *handler) CopyEventsBetween(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCopyRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CopyEventsBetween(ctx, req.toInput(c.Param("name")))
	if err != nil {
		h.l.Warnf(ctx, "uc.CopyEventsBetween: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"copied": output.Copied})
		return
	}

	response.OK(c, copyResp{Copied: output.Copied})
}

// ExportCSV godoc
// @Summary     Export a calendar as CSV
// @Tags        CSV
// @Produce     text/csv
// @Param       name path string true "Calendar name"
// @Success     200 {string} string "CSV document"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{name}/export [GET]
func (h *handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	var buf bytes.Buffer
	if err := h.uc.ExportCSV(ctx, name, &buf); err != nil {
		h.l.Warnf(ctx, "uc.ExportCSV: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name + ".csv"}))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ImportCSV godoc
// @Summary     Import CSV into a calendar
// @Description Schedules each row of a CSV document in the export layout. Rows imported before a conflict are kept.
// @Tags        CSV
// @Accept      text/csv
// @Produce     json
// @Param       name path string true "Calendar name"
// @Param       body body string true "CSV document"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     413 {object} response.Resp "Request Entity Too Large"
// @Router      /api/v1/calendars/{name}/import [POST]
func (h *handler) ImportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	output, err := h.uc.ImportCSV(ctx, c.Param("name"), body)
	if err != nil {
		h.l.Warnf(ctx, "uc.ImportCSV: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"imported": output.Imported})
		return
	}

	response.OK(c, importResp{Imported: output.Imported})
}
