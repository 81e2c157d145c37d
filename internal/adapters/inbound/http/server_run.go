package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*AppointmentServer)(nil)

// AppointmentServer is the REST API HTTP server of the appointments service.
type AppointmentServer struct {
	Port                      int                         `config:"HTTP_PORT" default:"8080"`
	Logger                    *log.Logger                 `resolve:""`
	CreateAppointmentUseCase  usecases.CreateAppointment  `resolve:""`
	RemoveAppointmentUseCase  usecases.RemoveAppointment  `resolve:""`
	ListAppointmentsUseCase   usecases.ListAppointments   `resolve:""`
	ProcessUserMessageUseCase usecases.ProcessUserMessage `resolve:""`
}

// Handler builds the router with every route of the API.
func (api AppointmentServer) Handler() http.Handler {
	router := chi.NewRouter()
	// Apply CORS at the top-level so preflight requests hit it, too.
	router.Use(cors.AllowAll().Handler)
	router.Use(middleware.Recoverer)

	// Register introspection endpoint for debugging and testing purposes
	router.Get("/introspect", IntrospectHandler)

	// Register the OpenAPI routes with telemetry middleware
	return gen.HandlerWithOptions(api, gen.ChiServerOptions{
		BaseRouter: router,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("appointments-api"),
		},
		ErrorHandlerFunc: invalidParam,
	})
}

// Run starts the HTTP server for the AppointmentServer.
func (api AppointmentServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AppointmentServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AppointmentServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AppointmentServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the AppointmentServer is ready by performing a health check.
func (api AppointmentServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
