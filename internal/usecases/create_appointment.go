package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CreateAppointment defines the interface for the CreateAppointment use case.
type CreateAppointment interface {
	Execute(ctx context.Context, params CreateAppointmentParams) (domain.Appointment, error)
}

// CreateAppointmentImpl is the implementation of the CreateAppointment use case.
type CreateAppointmentImpl struct {
	uow     domain.UnitOfWork
	creator AppointmentCreator
}

// NewCreateAppointmentImpl creates a new instance of CreateAppointmentImpl.
func NewCreateAppointmentImpl(uow domain.UnitOfWork, creator AppointmentCreator) CreateAppointmentImpl {
	return CreateAppointmentImpl{
		uow:     uow,
		creator: creator,
	}
}

// Execute books a new appointment in its own transaction.
func (cai CreateAppointmentImpl) Execute(ctx context.Context, params CreateAppointmentParams) (domain.Appointment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var created domain.Appointment
	err := cai.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		a, err := cai.creator.Create(spanCtx, uow, params)
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Appointment{}, err
	}

	RecordAppointmentOperation(spanCtx, "create")
	return created, nil
}

// InitCreateAppointment registers the CreateAppointment use case in the dependency container.
type InitCreateAppointment struct {
	Uow     domain.UnitOfWork  `resolve:""`
	Creator AppointmentCreator `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (ica InitCreateAppointment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateAppointment](NewCreateAppointmentImpl(ica.Uow, ica.Creator))
	return ctx, nil
}
