package http

import (
	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/model"
	"extensible-calendar/pkg/response"
)

// --- Request DTOs ---

type createCalendarReq struct {
	Name     string `json:"name"     binding:"required,max=255"`
	Timezone string `json:"timezone" binding:"required"`
}

func (r createCalendarReq) toInput() agenda.CreateCalendarInput {
	return agenda.CreateCalendarInput{
		Name:     r.Name,
		Timezone: r.Timezone,
	}
}

// ---

type editCalendarReq struct {
	Name     string `json:"-"` // populated from URI param
	Property string `json:"property" binding:"required,oneof=name timezone"`
	Value    string `json:"value"    binding:"required"`
}

func (r editCalendarReq) toInput() agenda.EditCalendarInput {
	return agenda.EditCalendarInput{
		Name:     r.Name,
		Property: r.Property,
		Value:    r.Value,
	}
}

// ---

type createEventReq struct {
	Calendar    string `json:"-"`
	Name        string `json:"name"   binding:"required,max=255"`
	Start       string `json:"start"  example:"2025-03-24T09:00"`
	End         string `json:"end"    example:"2025-03-24T10:00"`
	Date        string `json:"date"   example:"2025-03-24"`
	Repeat      string `json:"repeat" example:"MWF for 6 times"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Private     bool   `json:"private"`
}

func (r createEventReq) toInput() agenda.CreateEventInput {
	return agenda.CreateEventInput{
		Calendar:    r.Calendar,
		Name:        r.Name,
		Start:       r.Start,
		End:         r.End,
		Date:        r.Date,
		Repeat:      r.Repeat,
		Description: r.Description,
		Location:    r.Location,
		Private:     r.Private,
	}
}

// ---

type editEventsReq struct {
	Calendar string `json:"-"`
	Mode     string `json:"mode"     binding:"required,oneof=single from all"`
	Property string `json:"property" binding:"required"`
	Name     string `json:"name"     binding:"required"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Value    string `json:"value"`
}

func (r editEventsReq) toInput() agenda.EditEventsInput {
	return agenda.EditEventsInput{
		Calendar: r.Calendar,
		Mode:     agenda.EditMode(r.Mode),
		Property: r.Property,
		Name:     r.Name,
		Start:    r.Start,
		End:      r.End,
		Value:    r.Value,
	}
}

// ---

// listEventsReq selects events on Date, or overlapping Start..End.
type listEventsReq struct {
	Date  string `form:"date"`
	Start string `form:"start"`
	End   string `form:"end"`
}

// ---

type statusReq struct {
	At string `form:"at" binding:"required"`
}

// ---

type copyEventReq struct {
	Name        string `json:"name"         binding:"required"`
	Start       string `json:"start"        binding:"required"`
	Target      string `json:"target"       binding:"required"`
	TargetStart string `json:"target_start" binding:"required"`
}

func (r copyEventReq) toInput(source string) agenda.CopyEventInput {
	return agenda.CopyEventInput{
		Source:      source,
		Name:        r.Name,
		SourceStart: r.Start,
		Target:      r.Target,
		TargetStart: r.TargetStart,
	}
}

type copyDateReq struct {
	Date       string `json:"date"        binding:"required"`
	Target     string `json:"target"      binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
}

func (r copyDateReq) toInput(source string) agenda.CopyEventsOnInput {
	return agenda.CopyEventsOnInput{
		Source:     source,
		Date:       r.Date,
		Target:     r.Target,
		TargetDate: r.TargetDate,
	}
}

type copyRangeReq struct {
	StartDate  string `json:"start_date"  binding:"required"`
	EndDate    string `json:"end_date"    binding:"required"`
	Target     string `json:"target"      binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
}

func (r copyRangeReq) toInput(source string) agenda.CopyEventsBetweenInput {
	return agenda.CopyEventsBetweenInput{
		Source:     source,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Target:     r.Target,
		TargetDate: r.TargetDate,
	}
}

// --- Response DTOs ---

type calendarResp struct {
	Name       string `json:"name"`
	Timezone   string `json:"timezone"`
	Current    bool   `json:"current"`
	EventCount int    `json:"event_count"`
}

func newCalendarResp(info agenda.CalendarInfo) calendarResp {
	return calendarResp{
		Name:       info.Name,
		Timezone:   info.Timezone,
		Current:    info.Current,
		EventCount: info.EventCount,
	}
}

type listCalendarsResp struct {
	Calendars []calendarResp `json:"calendars"`
	Current   string         `json:"current,omitempty"`
}

func (h *handler) newListCalendarsResp(out agenda.ListCalendarsOutput) listCalendarsResp {
	cals := make([]calendarResp, len(out.Calendars))
	for i, info := range out.Calendars {
		cals[i] = newCalendarResp(info)
	}
	return listCalendarsResp{Calendars: cals, Current: out.Current}
}

type eventResp struct {
	Name        string            `json:"name"`
	Start       response.DateTime `json:"start"       swaggertype:"string"`
	End         response.DateTime `json:"end"         swaggertype:"string"`
	FullDay     bool              `json:"full_day"`
	Description string            `json:"description,omitempty"`
	Location    string            `json:"location,omitempty"`
	Public      bool              `json:"public"`
	Summary     string            `json:"summary"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		Name:        ev.Name,
		Start:       response.DateTime(ev.Start),
		End:         response.DateTime(ev.End),
		FullDay:     ev.FullDay,
		Description: ev.Description,
		Location:    ev.Location,
		Public:      ev.Public,
		Summary:     ev.String(),
	}
}

type eventsResp struct {
	Calendar string      `json:"calendar"`
	Events   []eventResp `json:"events"`
}

func (h *handler) newEventsResp(calendar string, events []model.Event) eventsResp {
	resp := eventsResp{Calendar: calendar, Events: make([]eventResp, len(events))}
	for i, ev := range events {
		resp.Events[i] = newEventResp(ev)
	}
	return resp
}

type editEventsResp struct {
	Updated int `json:"updated"`
}

type statusResp struct {
	Calendar string            `json:"calendar"`
	At       response.DateTime `json:"at" swaggertype:"string"`
	Busy     bool              `json:"busy"`
	Status   string            `json:"status"`
}

func (h *handler) newStatusResp(out agenda.StatusOutput) statusResp {
	status := "available"
	if out.Busy {
		status = "busy"
	}
	return statusResp{
		Calendar: out.Calendar,
		At:       response.DateTime(out.At),
		Busy:     out.Busy,
		Status:   status,
	}
}

type copyResp struct {
	Copied int `json:"copied"`
}

type importResp struct {
	Imported int `json:"imported"`
}
