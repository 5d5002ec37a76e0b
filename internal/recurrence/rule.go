package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"extensible-calendar/pkg/datemath"
)

const (
	keywordFor   = "for"
	keywordUntil = "until"
	keywordTimes = "times"
)

// ParseRule parses a repeat rule. Until bounds are read in loc: a bare date
// for full-day templates (meaning 23:59:59 that day) and a date-time otherwise.
func ParseRule(raw string, loc *time.Location, fullDay bool) (Rule, error) {
	tokens := strings.Fields(raw)
	if len(tokens) < 2 {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRecurrenceRule, raw)
	}

	k := keywordIndex(tokens)
	if k < 0 {
		return Rule{}, fmt.Errorf("%w: repeat rule must include 'for' or 'until'", ErrInvalidRecurrenceRule)
	}

	var rule Rule
	keyword := strings.ToLower(tokens[k])

	// A bad count wins over a bad day selector.
	if keyword == keywordFor {
		count, err := parseCount(tokens[k+1:])
		if err != nil {
			return Rule{}, err
		}
		rule.Count = count
	}

	days, err := parseDaySelector(tokens[:k])
	if err != nil {
		return Rule{}, err
	}
	rule.Days = days

	if keyword == keywordUntil {
		until, err := parseUntil(tokens[k+1:], loc, fullDay)
		if err != nil {
			return Rule{}, err
		}
		rule.Until = until
	}

	return rule, nil
}

func keywordIndex(tokens []string) int {
	for i, tok := range tokens {
		if strings.EqualFold(tok, keywordFor) || strings.EqualFold(tok, keywordUntil) {
			return i
		}
	}
	return -1
}

func parseCount(rest []string) (int, error) {
	if len(rest) != 2 || !strings.EqualFold(rest[1], keywordTimes) {
		return 0, fmt.Errorf("%w: expected 'for <N> times'", ErrInvalidRecurrenceRule)
	}
	count, err := strconv.Atoi(rest[0])
	if err != nil {
		return 0, fmt.Errorf("%w: repeat count %q is not a number", ErrInvalidRecurrenceRule, rest[0])
	}
	if count <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRepeatCount, count)
	}
	return count, nil
}

func parseDaySelector(selector []string) ([]time.Weekday, error) {
	switch len(selector) {
	case 0:
		return nil, ErrMissingDayCode
	case 1:
	default:
		return nil, fmt.Errorf("%w: day codes must be a single token, got %q",
			ErrInvalidRecurrenceRule, strings.Join(selector, " "))
	}

	var (
		seen = make(map[time.Weekday]bool, len(dayCodes))
		days []time.Weekday
	)
	for _, c := range strings.ToUpper(selector[0]) {
		wd, ok := dayCodeWeekdays[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q (allowed %s)", ErrInvalidDayCode, c, dayCodes)
		}
		if !seen[wd] {
			seen[wd] = true
			days = append(days, wd)
		}
	}
	return days, nil
}

func parseUntil(rest []string, loc *time.Location, fullDay bool) (time.Time, error) {
	if len(rest) != 1 {
		return time.Time{}, fmt.Errorf("%w: expected 'until <date>'", ErrInvalidRecurrenceRule)
	}

	p := datemath.NewParser(loc)
	if fullDay {
		day, err := p.ParseDate(rest[0])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
		}
		return p.EndOfDay(day), nil
	}

	until, err := p.ParseDateTime(rest[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}
	return until, nil
}
