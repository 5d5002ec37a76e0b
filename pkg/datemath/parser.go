package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser turns user supplied date and date-time strings into instants in a
// fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser bound to loc, e.g. a calendar's zone.
func NewParser(loc *time.Location) *Parser {
	return &Parser{location: loc}
}

// ParseDateTime parses "YYYY-MM-DDTHH:MM" as wall-clock time in the parser's location.
func (p *Parser) ParseDateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(value), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want %s)", ErrInvalidDateTime, value, DateTimeLayout)
	}
	return t, nil
}

// ParseDate parses "YYYY-MM-DD" and returns midnight of that day in the parser's location.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want %s)", ErrInvalidDate, value, DateLayout)
	}
	return t, nil
}

// ParseDay accepts either an ISO date or a relative expression understood by Parse.
func (p *Parser) ParseDay(value string, baseTime time.Time) (time.Time, error) {
	if t, err := p.ParseDate(value); err == nil {
		return t, nil
	}
	return p.Parse(value, baseTime)
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrInvalidDate, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrInvalidDate, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, dayName)
	}

	baseTime = baseTime.In(p.location)
	daysUntil := int(targetWeekday - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the day of startOfDay, in wall-clock terms.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	t := startOfDay.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
