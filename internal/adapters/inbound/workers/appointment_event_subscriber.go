package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
)

// AppointmentEventSubscriber consumes appointment events from Pub/Sub
// and hands each one to the TrackAppointmentEvent use case.
type AppointmentEventSubscriber struct {
	Logger              *log.Logger                    `resolve:""`
	Client              *pubsub.Client                 `resolve:""`
	Interval            time.Duration                  `config:"APPOINTMENT_EVENTS_BATCH_INTERVAL" default:"1s"`
	BatchSize           int                            `config:"APPOINTMENT_EVENTS_BATCH_SIZE" default:"20"`
	SubscriptionID      string                         `config:"APPOINTMENT_EVENTS_SUBSCRIPTION_ID" default:"appointments-sub"`
	TrackEvent          usecases.TrackAppointmentEvent `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the appointment event subscriber worker.
func (s AppointmentEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("AppointmentEventSubscriber: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 20
	}
	if s.Interval <= 0 {
		s.Interval = time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call).
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after the batch is flushed.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop.
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("AppointmentEventSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush processes one batch of Pub/Sub messages.
func (s AppointmentEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("AppointmentEventSubscriber: processing batch size=%d", len(batch))

	for _, msg := range batch {
		var event domain.AppointmentEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// Undecodable payloads are acked and dropped.
			s.Logger.Printf("AppointmentEventSubscriber: dropping undecodable payload: %v", err)
			msg.Ack()
			continue
		}

		err := s.TrackEvent.Execute(ctx, event)
		if errors.Is(err, usecases.ErrUnsupportedAppointmentEvent) {
			s.Logger.Printf("AppointmentEventSubscriber: dropping event: %v", err)
			msg.Ack()
			continue
		}
		if err != nil {
			msg.Nack()
			if !errors.Is(err, context.Canceled) {
				s.Logger.Printf("AppointmentEventSubscriber: %v", err)
			}
			continue
		}
		msg.Ack()
	}

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}
}
