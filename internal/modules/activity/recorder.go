package activity

import (
	"context"
	"log"
	"time"

	"portfolio/internal/domain"
)

type inserter interface {
	Insert(ctx context.Context, e *domain.ActivityLog) error
}

// Recorder turns audit events into activity_log rows, taking the actor from
// the request context. Write failures are logged and swallowed.
type Recorder struct {
	store inserter
	now   func() time.Time
}

func NewRecorder(store inserter) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

func (r *Recorder) Record(ctx context.Context, action, details string) {
	actor := ActorFromContext(ctx)
	entry := &domain.ActivityLog{
		AdminID:   actor.AdminID,
		Action:    action,
		Details:   details,
		IPAddress: actor.IP,
		CreatedAt: r.now().UTC(),
	}
	if err := r.store.Insert(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("activity: record action=%s failed: %v", action, err)
	}
}
