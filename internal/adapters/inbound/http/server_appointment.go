package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/common"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
)

// Hello answers the readiness check.
func (api AppointmentServer) Hello(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.HelloResp{Hello: "World"})
}

func (api AppointmentServer) CreateAppointment(w http.ResponseWriter, r *http.Request, params gen.CreateAppointmentParams) {
	var req gen.CreateAppointmentJSONRequestBody
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	appointment, err := api.CreateAppointmentUseCase.Execute(r.Context(), usecases.CreateAppointmentParams{
		PatientName:     common.Deref(coalesce(req.PatientName, params.PatientName)),
		AppointmentTime: common.Deref(coalesce(req.AppointmentTime, params.AppointmentTime)),
		Details:         coalesce(req.Details, params.Details),
	})
	if err != nil {
		api.Logger.Printf("Error creating appointment: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, gen.AppointmentResp{
		Message:     "Appointment created successfully",
		Appointment: toAppointment(appointment),
	})
}

func (api AppointmentServer) RemoveAppointment(w http.ResponseWriter, r *http.Request, params gen.RemoveAppointmentParams) {
	var req gen.RemoveAppointmentJSONRequestBody
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	appointment, err := api.RemoveAppointmentUseCase.Execute(r.Context(), common.Deref(coalesce(req.PatientName, params.PatientName)))
	if err != nil {
		api.Logger.Printf("Error removing appointment: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, gen.AppointmentResp{
		Message:     "Appointment removed successfully",
		Appointment: toAppointment(appointment),
	})
}

func (api AppointmentServer) ListAppointments(w http.ResponseWriter, r *http.Request, params gen.ListAppointmentsParams) {
	appointments, err := api.ListAppointmentsUseCase.Query(r.Context(), params.PatientName)
	if err != nil {
		api.Logger.Printf("Error listing appointments: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := gen.ListAppointmentsResp{Items: []gen.Appointment{}}
	for _, a := range appointments {
		resp.Items = append(resp.Items, toAppointment(a))
	}
	respondJSON(w, http.StatusOK, resp)
}
