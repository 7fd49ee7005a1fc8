package settlement

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Asamoah4284/PENNIT-sub001/internal/adapter"
	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/payment"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store"
)

// Config holds settlement configuration. The monetization toggle and the cost
// policy are injected at construction time so batch behavior is testable
// without touching process environment.
type Config struct {
	// Enabled gates the whole revenue-distribution feature; disabled runs
	// are explicit no-ops returning domain.ErrMonetizationDisabled
	Enabled bool
	// Weights maps work categories to points per counted read
	Weights domain.PointWeights
	// PlatformCostFixedGhc, when set, is deducted from the gross pool and
	// takes precedence over the percentage policy
	PlatformCostFixedGhc *decimal.Decimal
	// PlatformCostPercent deducts a percentage of the gross pool
	PlatformCostPercent decimal.Decimal
	// PayoutWorkers is the payout executor's worker pool size
	PayoutWorkers int
	// PayoutNarration appears on recipients' statements
	PayoutNarration string
}

// Service runs the monthly settlement batches: point accrual, pool
// calculation, earnings distribution and payout execution
type Service struct {
	config  Config
	store   store.Store
	gateway payment.Gateway
	clock   adapter.Clock
	entropy *rand.Rand
}

// NewService creates a new settlement service
func NewService(cfg Config, st store.Store, gw payment.Gateway, clock adapter.Clock) *Service {
	if cfg.Weights == nil {
		cfg.Weights = domain.DefaultPointWeights()
	}
	if cfg.PayoutWorkers <= 0 {
		cfg.PayoutWorkers = 4
	}
	return &Service{
		config:  cfg,
		store:   st,
		gateway: gw,
		clock:   clock,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
	}
}

// newRunID mints a sortable identifier for one batch run, used in logs and as
// the payout reference prefix
func (s *Service) newRunID() string {
	return ulid.MustNew(ulid.Timestamp(s.clock.Now()), s.entropy).String()
}
