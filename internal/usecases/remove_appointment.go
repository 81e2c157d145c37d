package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RemoveAppointment defines the interface for the RemoveAppointment use case.
type RemoveAppointment interface {
	Execute(ctx context.Context, patientName string) (domain.Appointment, error)
}

// RemoveAppointmentImpl is the implementation of the RemoveAppointment use case.
type RemoveAppointmentImpl struct {
	uow     domain.UnitOfWork
	remover AppointmentRemover
}

// NewRemoveAppointmentImpl creates a new instance of RemoveAppointmentImpl.
func NewRemoveAppointmentImpl(uow domain.UnitOfWork, remover AppointmentRemover) RemoveAppointmentImpl {
	return RemoveAppointmentImpl{
		uow:     uow,
		remover: remover,
	}
}

// Execute removes the patient's oldest appointment in its own transaction.
func (rai RemoveAppointmentImpl) Execute(ctx context.Context, patientName string) (domain.Appointment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var removed domain.Appointment
	err := rai.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		a, err := rai.remover.Remove(spanCtx, uow, patientName)
		if err != nil {
			return err
		}
		removed = a
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Appointment{}, err
	}

	RecordAppointmentOperation(spanCtx, "remove")
	return removed, nil
}

// InitRemoveAppointment registers the RemoveAppointment use case in the dependency container.
type InitRemoveAppointment struct {
	Uow     domain.UnitOfWork  `resolve:""`
	Remover AppointmentRemover `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (ira InitRemoveAppointment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RemoveAppointment](NewRemoveAppointmentImpl(ira.Uow, ira.Remover))
	return ctx, nil
}
