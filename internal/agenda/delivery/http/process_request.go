package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"extensible-calendar/internal/agenda"
)

func (h *handler) processCreateCalendarReq(c *gin.Context) (createCalendarReq, error) {
	var req createCalendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processEditCalendarReq(c *gin.Context) (editCalendarReq, error) {
	var req editCalendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Name = c.Param("name")
	return req, nil
}

func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Calendar = c.Param("name")
	return req, nil
}

func (h *handler) processEditEventsReq(c *gin.Context) (editEventsReq, error) {
	var req editEventsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Calendar = c.Param("name")
	return req, nil
}

// processListEventsReq requires either date, or both start and end.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	hasDate := strings.TrimSpace(req.Date) != ""
	hasRange := strings.TrimSpace(req.Start) != "" || strings.TrimSpace(req.End) != ""
	if hasDate == hasRange {
		return req, fmt.Errorf("%w: pass either date, or start and end", agenda.ErrInvalidInput)
	}
	return req, nil
}

func (h *handler) processStatusReq(c *gin.Context) (statusReq, error) {
	var req statusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCopyEventReq(c *gin.Context) (copyEventReq, error) {
	var req copyEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCopyDateReq(c *gin.Context) (copyDateReq, error) {
	var req copyDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCopyRangeReq(c *gin.Context) (copyRangeReq, error) {
	var req copyRangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
