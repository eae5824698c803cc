package worker

import (
	"context"
	"log"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/queue"
)

// DripScheduler replaces in-process timers for multi-day email delays: the
// pending steps live in the scheduled_emails table, and this worker scans
// for due rows on a fixed tick and hands them to the broker. A restart loses
// nothing; at worst a due email goes out one tick late.
type DripScheduler struct {
	Scheduled    entity.ScheduledEmailRepositoryInterface
	Producer     queue.DripProducerInterface
	tickInterval time.Duration
	claimLimit   int
	now          func() time.Time
}

func NewDripScheduler(
	scheduled entity.ScheduledEmailRepositoryInterface,
	producer queue.DripProducerInterface,
	now func() time.Time,
) *DripScheduler {
	if now == nil {
		now = time.Now
	}
	return &DripScheduler{
		Scheduled:    scheduled,
		Producer:     producer,
		tickInterval: 1 * time.Minute,
		claimLimit:   100,
		now:          now,
	}
}

func (w *DripScheduler) Start(ctx context.Context) {
	log.Println("🕒 drip scheduler started (1m tick)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	// Catch up immediately on boot: anything that came due while the
	// process was down goes out on the first pass.
	w.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ drip scheduler stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick claims due rows and publishes them. A row that cannot be published
// is marked failed rather than left claimed forever.
func (w *DripScheduler) Tick(ctx context.Context) {
	due, err := w.Scheduled.ClaimDue(ctx, w.now(), w.claimLimit)
	if err != nil {
		log.Printf("❌ failed to claim due drip emails: %v", err)
		return
	}

	for _, email := range due {
		payload := queue.DripPayload{
			ScheduledEmailID: email.ID,
			LeadID:           email.LeadID,
			TemplateType:     email.TemplateType,
			Subject:          email.Subject,
		}

		if err := w.Producer.PublishDrip(ctx, payload); err != nil {
			log.Printf("❌ failed to enqueue drip email %s: %v", email.ID, err)
			if markErr := w.Scheduled.MarkFailed(ctx, email.ID); markErr != nil {
				log.Printf("⚠️ drip row %s stuck in queued state: %v", email.ID, markErr)
			}
			continue
		}
	}

	if len(due) > 0 {
		log.Printf("📨 %d drip email(s) enqueued", len(due))
	}
}
