package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CreateAppointmentParams holds the raw inputs for booking an appointment.
type CreateAppointmentParams struct {
	PatientName     string
	AppointmentTime string
	Details         *string
}

// AppointmentCreator books appointments within an existing unit of work.
type AppointmentCreator interface {
	Create(ctx context.Context, uow domain.UnitOfWork, params CreateAppointmentParams) (domain.Appointment, error)
}

// AppointmentCreatorImpl is the implementation of AppointmentCreator.
type AppointmentCreatorImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewAppointmentCreatorImpl creates a new instance of AppointmentCreatorImpl.
func NewAppointmentCreatorImpl(timeProvider domain.CurrentTimeProvider) AppointmentCreatorImpl {
	return AppointmentCreatorImpl{
		timeProvider: timeProvider,
	}
}

// Create validates and stores the appointment, then records an APPOINTMENT.CREATED event in the outbox.
func (aci AppointmentCreatorImpl) Create(ctx context.Context, uow domain.UnitOfWork, params CreateAppointmentParams) (domain.Appointment, error) {
	appointmentTime, err := domain.ParseAppointmentTime(params.AppointmentTime)
	if err != nil {
		return domain.Appointment{}, err
	}

	appointment := domain.Appointment{
		PatientName:     strings.TrimSpace(params.PatientName),
		AppointmentTime: appointmentTime,
		Details:         params.Details,
	}
	if err := appointment.Validate(); err != nil {
		return domain.Appointment{}, err
	}

	id, err := uow.Appointment().CreateAppointment(ctx, appointment)
	if err != nil {
		return domain.Appointment{}, err
	}
	appointment.ID = id

	err = uow.Outbox().CreateAppointmentEvent(ctx, domain.AppointmentEvent{
		Type:            domain.EventType_APPOINTMENT_CREATED,
		AppointmentID:   appointment.ID,
		PatientName:     appointment.PatientName,
		AppointmentTime: appointment.FormattedTime(),
		CreatedAt:       aci.timeProvider.Now(),
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	return appointment, nil
}

// InitAppointmentCreator registers the AppointmentCreator in the dependency container.
type InitAppointmentCreator struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (iac InitAppointmentCreator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AppointmentCreator](NewAppointmentCreatorImpl(iac.TimeProvider))
	return ctx, nil
}
