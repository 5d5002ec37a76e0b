package usecase

import (
	"sync"
	"time"

	"extensible-calendar/internal/calendar"
	"extensible-calendar/internal/metric"
	pkgLog "extensible-calendar/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	metrics *metric.Metrics
	manager *calendar.Manager
	now     func() time.Time

	// mu serializes access to manager, which is single-threaded.
	mu sync.Mutex
}

// New creates a new agenda UseCase instance. A nil metrics disables
// instrumentation.
func New(l pkgLog.Logger, metrics *metric.Metrics, manager *calendar.Manager) *implUseCase {
	if manager == nil {
		manager = calendar.NewManager()
	}
	return &implUseCase{
		l:       l,
		metrics: metrics,
		manager: manager,
		now:     time.Now,
	}
}
