package http

import (
	"extensible-calendar/internal/agenda"
	"extensible-calendar/pkg/log"
)

// maxImportBytes caps the CSV document accepted by ImportCSV.
const maxImportBytes = 1 << 20

type handler struct {
	l  log.Logger
	uc agenda.UseCase
}

// New creates a new HTTP handler for the agenda domain.
func New(l log.Logger, uc agenda.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
