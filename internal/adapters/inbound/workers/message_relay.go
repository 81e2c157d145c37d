package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
)

// MessageRelay is a runnable that relays outbox events to Pub/Sub on a fixed interval.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic processing of outbox events.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Println("MessageRelay: running...")
	if mr.Interval <= 0 {
		mr.Interval = 500 * time.Millisecond
	}

	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := mr.RelayOutbox.Execute(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				mr.Logger.Printf("MessageRelay: error processing batch: %v", err)
			}
			if mr.workerExecutionChan != nil {
				mr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopped")
			return nil
		}
	}
}
