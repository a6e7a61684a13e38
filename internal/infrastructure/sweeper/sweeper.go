package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/usecase"
)

// Sweeper periodically expires stale pending orders. It exists for
// deployments without an external cron; the POST /v1/orders/sweep endpoint
// performs the same batch on demand.
type Sweeper struct {
	fulfillment usecase.IFulfillmentUseCase
	interval    time.Duration
	olderThan   time.Duration
}

func New(fulfillment usecase.IFulfillmentUseCase, interval time.Duration) *Sweeper {
	return &Sweeper{
		fulfillment: fulfillment,
		interval:    interval,
		olderThan:   usecase.StaleOrderAge,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Sweep
// failures are logged and the loop keeps going; a broken sweep must never
// take the process down.
func (s *Sweeper) Run(ctx context.Context) {
	log.Printf("[sweeper] started interval=%s older_than=%s", s.interval, s.olderThan)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[sweeper] stopped")
			return
		case <-ticker.C:
			expired, err := s.fulfillment.ExpireStale(ctx, s.olderThan)
			if err != nil {
				log.Printf("[sweeper] sweep failed err=%v", err)
				continue
			}
			if len(expired) > 0 {
				log.Printf("[sweeper] sweep done expired=%d", len(expired))
			}
		}
	}
}
