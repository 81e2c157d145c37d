package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// AppointmentRemover removes appointments within an existing unit of work.
type AppointmentRemover interface {
	Remove(ctx context.Context, uow domain.UnitOfWork, patientName string) (domain.Appointment, error)
}

// AppointmentRemoverImpl is the implementation of AppointmentRemover.
type AppointmentRemoverImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewAppointmentRemoverImpl creates a new instance of AppointmentRemoverImpl.
func NewAppointmentRemoverImpl(timeProvider domain.CurrentTimeProvider) AppointmentRemoverImpl {
	return AppointmentRemoverImpl{
		timeProvider: timeProvider,
	}
}

// Remove deletes the oldest appointment booked under patientName and records
// an APPOINTMENT.REMOVED event. It returns a NotFoundErr when the patient has no appointment.
func (ari AppointmentRemoverImpl) Remove(ctx context.Context, uow domain.UnitOfWork, patientName string) (domain.Appointment, error) {
	patientName = strings.TrimSpace(patientName)
	if patientName == "" {
		return domain.Appointment{}, domain.NewValidationErr("patient_name cannot be empty")
	}

	appointment, found, err := uow.Appointment().FindAppointmentByPatientName(ctx, patientName)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !found {
		return domain.Appointment{}, domain.NewNotFoundErr(fmt.Sprintf("no appointment found for patient %q", patientName))
	}

	if err := uow.Appointment().DeleteAppointment(ctx, appointment.ID); err != nil {
		return domain.Appointment{}, err
	}

	err = uow.Outbox().CreateAppointmentEvent(ctx, domain.AppointmentEvent{
		Type:            domain.EventType_APPOINTMENT_REMOVED,
		AppointmentID:   appointment.ID,
		PatientName:     appointment.PatientName,
		AppointmentTime: appointment.FormattedTime(),
		CreatedAt:       ari.timeProvider.Now(),
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	return appointment, nil
}

// InitAppointmentRemover registers the AppointmentRemover in the dependency container.
type InitAppointmentRemover struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (iar InitAppointmentRemover) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AppointmentRemover](NewAppointmentRemoverImpl(iar.TimeProvider))
	return ctx, nil
}
