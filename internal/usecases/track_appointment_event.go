package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnsupportedAppointmentEvent is returned for event types no consumer
// handles. Redelivering such events never succeeds.
var ErrUnsupportedAppointmentEvent = errors.New("unsupported appointment event type")

// TrackAppointmentEvent defines the interface for the TrackAppointmentEvent use case.
type TrackAppointmentEvent interface {
	Execute(ctx context.Context, event domain.AppointmentEvent) error
}

// TrackAppointmentEventImpl logs and counts appointment events consumed from the topic.
type TrackAppointmentEventImpl struct {
	logger *log.Logger
}

// NewTrackAppointmentEventImpl creates a new instance of TrackAppointmentEventImpl.
func NewTrackAppointmentEventImpl(logger *log.Logger) TrackAppointmentEventImpl {
	return TrackAppointmentEventImpl{logger: logger}
}

// Execute records a consumed appointment event.
func (t TrackAppointmentEventImpl) Execute(ctx context.Context, event domain.AppointmentEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("event_type", string(event.Type)),
		attribute.Int64("appointment_id", event.AppointmentID),
	))
	defer span.End()

	switch event.Type {
	case domain.EventType_APPOINTMENT_CREATED, domain.EventType_APPOINTMENT_REMOVED:
	default:
		err := fmt.Errorf("%w %q", ErrUnsupportedAppointmentEvent, event.Type)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	t.logger.Printf(
		"TrackAppointmentEvent: %s appointment=%d patient=%q time=%s",
		event.Type, event.AppointmentID, event.PatientName, event.AppointmentTime,
	)
	RecordAppointmentEventConsumed(spanCtx, string(event.Type))
	return nil
}

// InitTrackAppointmentEvent registers the TrackAppointmentEvent use case in the dependency container.
type InitTrackAppointmentEvent struct {
	Logger *log.Logger `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (i InitTrackAppointmentEvent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TrackAppointmentEvent](NewTrackAppointmentEventImpl(i.Logger))
	return ctx, nil
}
