package workers

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	createdEvent = domain.AppointmentEvent{
		Type:            domain.EventType_APPOINTMENT_CREATED,
		AppointmentID:   1,
		PatientName:     "John Doe",
		AppointmentTime: "2024-05-20T14:30:00",
		CreatedAt:       time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	removedEvent = domain.AppointmentEvent{
		Type:            domain.EventType_APPOINTMENT_REMOVED,
		AppointmentID:   1,
		PatientName:     "John Doe",
		AppointmentTime: "2024-05-20T14:30:00",
		CreatedAt:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	archivedEvent = domain.AppointmentEvent{
		Type:            "PATIENT.ARCHIVED",
		AppointmentID:   2,
		PatientName:     "Jane Roe",
		AppointmentTime: "2024-05-21T09:00:00",
		CreatedAt:       time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
	}
)

// trackedEvents collects the events handed to the TrackAppointmentEvent mock.
type trackedEvents struct {
	mu       sync.Mutex
	attempts map[domain.EventType]int
	done     chan domain.AppointmentEvent
}

func newTrackedEvents() *trackedEvents {
	return &trackedEvents{
		attempts: map[domain.EventType]int{},
		done:     make(chan domain.AppointmentEvent, 10),
	}
}

func (te *trackedEvents) attempt(event domain.AppointmentEvent) int {
	te.mu.Lock()
	defer te.mu.Unlock()
	te.attempts[event.Type]++
	return te.attempts[event.Type]
}

func (te *trackedEvents) wait(t *testing.T, count int, timeout time.Duration) []domain.AppointmentEvent {
	t.Helper()

	var events []domain.AppointmentEvent
	deadline := time.After(timeout)
	for len(events) < count {
		select {
		case event := <-te.done:
			events = append(events, event)
		case <-deadline:
			t.Fatalf("timeout waiting for tracked events; got %d, expected %d", len(events), count)
		}
	}
	return events
}

func TestAppointmentEventSubscriber_Run(t *testing.T) {
	tests := map[string]struct {
		payloads         func(t *testing.T) [][]byte
		failFirstRemoved bool
		settle           time.Duration
		expectedEvents   []domain.AppointmentEvent
		expectedAttempts map[domain.EventType]int
	}{
		"tracks-every-event": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{
					appointmentEventPayload(t, createdEvent),
					appointmentEventPayload(t, removedEvent),
				}
			},
			expectedEvents: []domain.AppointmentEvent{createdEvent, removedEvent},
			expectedAttempts: map[domain.EventType]int{
				domain.EventType_APPOINTMENT_CREATED: 1,
				domain.EventType_APPOINTMENT_REMOVED: 1,
			},
		},
		"drops-undecodable-payload": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{
					[]byte("not json"),
					appointmentEventPayload(t, createdEvent),
				}
			},
			expectedEvents: []domain.AppointmentEvent{createdEvent},
			expectedAttempts: map[domain.EventType]int{
				domain.EventType_APPOINTMENT_CREATED: 1,
			},
		},
		"acks-unsupported-event": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{
					appointmentEventPayload(t, archivedEvent),
					appointmentEventPayload(t, createdEvent),
				}
			},
			settle:         200 * time.Millisecond,
			expectedEvents: []domain.AppointmentEvent{createdEvent},
			expectedAttempts: map[domain.EventType]int{
				"PATIENT.ARCHIVED":                   1,
				domain.EventType_APPOINTMENT_CREATED: 1,
			},
		},
		"redelivers-failed-event": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{appointmentEventPayload(t, removedEvent)}
			},
			failFirstRemoved: true,
			expectedEvents:   []domain.AppointmentEvent{removedEvent},
			expectedAttempts: map[domain.EventType]int{
				domain.EventType_APPOINTMENT_REMOVED: 2,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			client, topicName := setupPubSubServer(t, ctx, "Appointments", "appointments-sub")

			tracked := newTrackedEvents()
			track := usecases.NewMockTrackAppointmentEvent(t)
			track.EXPECT().
				Execute(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, event domain.AppointmentEvent) error {
					attempt := tracked.attempt(event)
					if event.Type != domain.EventType_APPOINTMENT_CREATED && event.Type != domain.EventType_APPOINTMENT_REMOVED {
						return fmt.Errorf("%w %q", usecases.ErrUnsupportedAppointmentEvent, event.Type)
					}
					if tt.failFirstRemoved && event.Type == domain.EventType_APPOINTMENT_REMOVED && attempt == 1 {
						return assert.AnError
					}
					tracked.done <- event
					return nil
				})

			subscriber := AppointmentEventSubscriber{
				Logger:         log.New(io.Discard, "", 0),
				Client:         client,
				Interval:       20 * time.Millisecond,
				BatchSize:      5,
				SubscriptionID: "appointments-sub",
				TrackEvent:     track,
			}

			stop, doneChan := run(t, ctx, subscriber)

			require.NoError(t, publishMessages(ctx, client, topicName, tt.payloads(t)))

			events := tracked.wait(t, len(tt.expectedEvents), 5*time.Second)
			assert.ElementsMatch(t, tt.expectedEvents, events)

			// Leave room for a redelivery that must not happen.
			time.Sleep(tt.settle)

			stop()
			waitRunnableStop(t, doneChan)

			tracked.mu.Lock()
			defer tracked.mu.Unlock()
			assert.Equal(t, tt.expectedAttempts, tracked.attempts)
		})
	}
}

func TestAppointmentEventSubscriber_BatchSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, topicName := setupPubSubServer(t, ctx, "Appointments", "appointments-sub")

	track := usecases.NewMockTrackAppointmentEvent(t)
	track.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil)

	signalChan := make(chan struct{})
	subscriber := AppointmentEventSubscriber{
		Logger:              log.New(io.Discard, "", 0),
		Client:              client,
		Interval:            50 * time.Millisecond,
		BatchSize:           10,
		SubscriptionID:      "appointments-sub",
		TrackEvent:          track,
		workerExecutionChan: signalChan,
	}

	stop, doneChan := run(t, ctx, subscriber)

	// Fewer messages than BatchSize are flushed by the ticker.
	require.NoError(t, publishMessages(ctx, client, topicName, [][]byte{
		appointmentEventPayload(t, createdEvent),
		appointmentEventPayload(t, removedEvent),
	}))

	waitForBatchSignals(t, signalChan, 1, 2*time.Second)

	// Drain further signals so the worker can observe cancellation.
	go func() {
		for range signalChan {
		}
	}()
	stop()
	waitRunnableStop(t, doneChan)
	close(signalChan)
}

func TestAppointmentEventSubscriber_MissingSubscription(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, _ := setupPubSubServer(t, ctx, "Appointments", "")

	subscriber := AppointmentEventSubscriber{
		Logger:         log.New(io.Discard, "", 0),
		Client:         client,
		Interval:       20 * time.Millisecond,
		BatchSize:      5,
		SubscriptionID: "does-not-exist",
		TrackEvent:     usecases.NewMockTrackAppointmentEvent(t),
	}

	err := subscriber.Run(ctx)
	assert.Error(t, err)
}
