package usecase

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/gcalendar"
	pkgLog "pawpal-planner/pkg/log"
)

// CalendarClient is the slice of the calendar API the planner needs for
// plan export. Nil means export is not configured.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config carries the scheduling tunables. Zero values fall back to the
// documented defaults in New.
type Config struct {
	ProbeStepMinutes      int // forward search step for rigid placement
	ProbeLimit            int // max forward probes past the window start
	UrgencyHorizonMinutes int // deadline horizon for the urgency boost
	MinGapMinutes         int // smallest free interval counted as a gap
	PlanHistorySize       int // bounded LRU of generated plans
	CalendarID            string
	Timezone              string

	// NowFunc supplies the evaluation time in minutes-of-day. Defaults to the
	// wall clock; tests inject a fixed value to keep plans reproducible.
	NowFunc func() int
}

const (
	defaultProbeStep       = 15
	defaultProbeLimit      = 8
	defaultUrgencyHorizon  = 120
	defaultMinGap          = 15
	defaultPlanHistorySize = 32
)

type implUseCase struct {
	l        pkgLog.Logger
	calendar CalendarClient
	cfg      Config

	mu    sync.Mutex
	tasks map[string]*model.Task
	order []string // insertion order of task ids, the deterministic tie-break
	pet   *model.Pet
	owner *model.PetOwner
	plans *lru.Cache[string, planner.GeneratePlanOutput]
}

// New creates a new planner UseCase instance. calendar may be nil when
// calendar export is not configured.
func New(l pkgLog.Logger, calendar CalendarClient, cfg Config) *implUseCase {
	if cfg.ProbeStepMinutes <= 0 {
		cfg.ProbeStepMinutes = defaultProbeStep
	}
	if cfg.ProbeLimit <= 0 {
		cfg.ProbeLimit = defaultProbeLimit
	}
	if cfg.UrgencyHorizonMinutes <= 0 {
		cfg.UrgencyHorizonMinutes = defaultUrgencyHorizon
	}
	if cfg.MinGapMinutes <= 0 {
		cfg.MinGapMinutes = defaultMinGap
	}
	if cfg.PlanHistorySize <= 0 {
		cfg.PlanHistorySize = defaultPlanHistorySize
	}
	if cfg.NowFunc == nil {
		cfg.NowFunc = func() int {
			now := time.Now()
			return now.Hour()*60 + now.Minute()
		}
	}

	plans, _ := lru.New[string, planner.GeneratePlanOutput](cfg.PlanHistorySize)

	return &implUseCase{
		l:        l,
		calendar: calendar,
		cfg:      cfg,
		tasks:    make(map[string]*model.Task),
		plans:    plans,
	}
}

var _ planner.UseCase = (*implUseCase)(nil)
