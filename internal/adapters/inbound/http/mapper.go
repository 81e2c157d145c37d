package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	var runErr *domain.AssistantRunErr
	var timeoutErr *domain.TimeoutErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &runErr):
		errResp.Error.Code = gen.ASSISTANTFAILURE
		errResp.Error.Message = "the assistant could not process the message"
	case errors.As(err, &timeoutErr):
		errResp.Error.Code = gen.TIMEOUT
		errResp.Error.Message = timeoutErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = err.Error()
	}
	return errResp
}

func toAppointment(a domain.Appointment) gen.Appointment {
	return gen.Appointment{
		Id:              a.ID,
		PatientName:     a.PatientName,
		AppointmentTime: a.FormattedTime(),
		Details:         a.Details,
	}
}
