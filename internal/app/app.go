package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/outbound/openai"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
)

// NewAppointmentsApp creates and returns a new instance of the appointments application.
func NewAppointmentsApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitTopics{},
			&pubsub.InitPublisher{},
			&openai.InitRemoteAssistant{},

			&usecases.InitAppointmentCreator{},
			&usecases.InitAppointmentRemover{},
			&assistant.InitAssistantToolRegistry{},

			&usecases.InitCreateAppointment{},
			&usecases.InitRemoveAppointment{},
			&usecases.InitListAppointments{},
			&usecases.InitProcessUserMessage{},
			&usecases.InitTrackAppointmentEvent{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.AppointmentServer{},
			&workers.MessageRelay{},
			&workers.AppointmentEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
