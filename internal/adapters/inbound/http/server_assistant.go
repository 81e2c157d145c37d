package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/common"
)

func (api AppointmentServer) ProcessUserMessage(w http.ResponseWriter, r *http.Request, params gen.ProcessUserMessageParams) {
	var req gen.ProcessUserMessageJSONRequestBody
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, badRequest("%v", err))
		return
	}

	reply, err := api.ProcessUserMessageUseCase.Execute(r.Context(), common.Deref(coalesce(req.UserMessage, params.UserMessage)))
	if err != nil {
		api.Logger.Printf("Error processing user message: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, gen.MessageResp{Message: reply})
}
