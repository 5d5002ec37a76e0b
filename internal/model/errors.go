package model

import "errors"

var ErrInvalidTimeRange = errors.New("event end time cannot be before start time")
