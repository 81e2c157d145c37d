package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListAppointments defines the interface for the ListAppointments use case.
type ListAppointments interface {
	Query(ctx context.Context, patientName *string) ([]domain.Appointment, error)
}

// ListAppointmentsImpl is the implementation of the ListAppointments use case.
type ListAppointmentsImpl struct {
	repo domain.AppointmentRepository
}

// NewListAppointmentsImpl creates a new instance of ListAppointmentsImpl.
func NewListAppointmentsImpl(repo domain.AppointmentRepository) ListAppointmentsImpl {
	return ListAppointmentsImpl{repo: repo}
}

// Query lists appointments, optionally only those of one patient.
func (lai ListAppointmentsImpl) Query(ctx context.Context, patientName *string) ([]domain.Appointment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if patientName != nil {
		trimmed := strings.TrimSpace(*patientName)
		if trimmed == "" {
			patientName = nil
		} else {
			patientName = &trimmed
		}
	}

	appointments, err := lai.repo.ListAppointments(spanCtx, patientName)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return appointments, nil
}

// InitListAppointments registers the ListAppointments use case in the dependency container.
type InitListAppointments struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (ila InitListAppointments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAppointments](NewListAppointmentsImpl(ila.Uow.Appointment()))
	return ctx, nil
}
