package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const (
	toolErr_UnknownTool      = "unknown_tool"
	toolErr_InvalidArguments = "invalid_arguments"
	toolErr_Validation       = "validation_error"
	toolErr_NotFound         = "not_found"
	toolErr_Store            = "store_error"
)

// appointmentView is the appointment shape returned to the assistant.
type appointmentView struct {
	ID              int64   `json:"id"`
	PatientName     string  `json:"patient_name"`
	AppointmentTime string  `json:"appointment_time"`
	Details         *string `json:"details"`
}

// toolResult is the JSON envelope submitted as the output of every tool call.
type toolResult struct {
	Message     string           `json:"message"`
	Appointment *appointmentView `json:"appointment"`
	Error       string           `json:"error,omitempty"`
}

// ToolRegistry dispatches assistant tool calls to the appointment store.
type ToolRegistry struct {
	uow     domain.UnitOfWork
	creator usecases.AppointmentCreator
	remover usecases.AppointmentRemover
	logger  *log.Logger
	specs   map[ToolKind]toolSpec
	order   []ToolKind
}

// NewToolRegistry creates a ToolRegistry with the add and remove appointment tools.
func NewToolRegistry(
	uow domain.UnitOfWork,
	creator usecases.AppointmentCreator,
	remover usecases.AppointmentRemover,
	logger *log.Logger,
) (ToolRegistry, error) {
	specs, err := defaultToolSpecs()
	if err != nil {
		return ToolRegistry{}, err
	}

	r := ToolRegistry{
		uow:     uow,
		creator: creator,
		remover: remover,
		logger:  logger,
		specs:   make(map[ToolKind]toolSpec, len(specs)),
	}
	for _, spec := range specs {
		kind := ToolKind(spec.definition.Name)
		r.specs[kind] = spec
		r.order = append(r.order, kind)
	}
	return r, nil
}

// Definitions returns the tool definitions exposed to the remote assistant.
func (r ToolRegistry) Definitions() []domain.AssistantToolDefinition {
	defs := make([]domain.AssistantToolDefinition, 0, len(r.order))
	for _, kind := range r.order {
		defs = append(defs, r.specs[kind].definition)
	}
	return defs
}

// Dispatch executes one tool call. Failures are reported inside the output
// envelope so the run can continue.
func (r ToolRegistry) Dispatch(ctx context.Context, call domain.AssistantToolCall) domain.AssistantToolOutput {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.String("tool.name", call.Name),
		attribute.String("tool.call_id", call.ID),
	)

	result := r.dispatch(spanCtx, call)

	outcome := "ok"
	if result.Error != "" {
		outcome = result.Error
		telemetry.RecordErrorAndStatus(span, domain.NewToolDispatchErr(call.Name, result.Message))
	}
	usecases.RecordToolCall(spanCtx, call.Name, outcome)

	return domain.AssistantToolOutput{
		ToolCallID: call.ID,
		Output:     encodeToolResult(result),
	}
}

func (r ToolRegistry) dispatch(ctx context.Context, call domain.AssistantToolCall) toolResult {
	kind, err := ParseToolKind(call.Name)
	if err != nil {
		r.logger.Printf("ToolRegistry: %v", domain.NewToolDispatchErr(call.Name, err.Error()))
		return toolResult{
			Message: fmt.Sprintf("Tool '%s' is not registered.", call.Name),
			Error:   toolErr_UnknownTool,
		}
	}
	spec := r.specs[kind]

	switch kind {
	case ToolKind_AddAppointment:
		var args AddAppointmentArgs
		if err := decodeToolArguments(call.Arguments, spec.validator, &args); err != nil {
			return r.invalidArguments(call, err)
		}
		return r.addAppointment(ctx, args)

	case ToolKind_RemoveAppointment:
		var args RemoveAppointmentArgs
		if err := decodeToolArguments(call.Arguments, spec.validator, &args); err != nil {
			return r.invalidArguments(call, err)
		}
		return r.removeAppointment(ctx, args)

	default:
		return toolResult{
			Message: fmt.Sprintf("Tool '%s' has no handler.", kind),
			Error:   toolErr_UnknownTool,
		}
	}
}

func (r ToolRegistry) addAppointment(ctx context.Context, args AddAppointmentArgs) toolResult {
	var created domain.Appointment
	err := r.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		a, err := r.creator.Create(ctx, uow, usecases.CreateAppointmentParams{
			PatientName:     args.PatientName,
			AppointmentTime: args.AppointmentTime,
			Details:         args.Details,
		})
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return r.failure(ToolKind_AddAppointment, "Failed to create appointment", err)
	}

	r.logger.Printf("ToolRegistry: created appointment %s", created)
	return toolResult{
		Message:     "Appointment created successfully",
		Appointment: newAppointmentView(created),
	}
}

func (r ToolRegistry) removeAppointment(ctx context.Context, args RemoveAppointmentArgs) toolResult {
	var removed domain.Appointment
	err := r.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		a, err := r.remover.Remove(ctx, uow, args.PatientName)
		if err != nil {
			return err
		}
		removed = a
		return nil
	})
	if err != nil {
		return r.failure(ToolKind_RemoveAppointment, "Failed to remove appointment", err)
	}

	r.logger.Printf("ToolRegistry: removed appointment %s", removed)
	return toolResult{
		Message:     "Appointment removed successfully",
		Appointment: newAppointmentView(removed),
	}
}

func (r ToolRegistry) invalidArguments(call domain.AssistantToolCall, err error) toolResult {
	r.logger.Printf("ToolRegistry: %v", domain.NewToolDispatchErr(call.Name, err.Error()))
	return toolResult{
		Message: fmt.Sprintf("Failed to parse arguments of '%s': %s", call.Name, err.Error()),
		Error:   toolErr_InvalidArguments,
	}
}

func (r ToolRegistry) failure(kind ToolKind, prefix string, err error) toolResult {
	code := toolErr_Store
	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		code = toolErr_Validation
	case errors.As(err, &notFoundErr):
		code = toolErr_NotFound
	default:
		r.logger.Printf("ToolRegistry: %s failed: %v", kind, err)
	}
	return toolResult{
		Message: fmt.Sprintf("%s: %s", prefix, err.Error()),
		Error:   code,
	}
}

func newAppointmentView(a domain.Appointment) *appointmentView {
	return &appointmentView{
		ID:              a.ID,
		PatientName:     a.PatientName,
		AppointmentTime: a.FormattedTime(),
		Details:         a.Details,
	}
}

func encodeToolResult(result toolResult) string {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"message":%q,"appointment":null,"error":"encoding_error"}`, err.Error())
	}
	return string(b)
}

// InitAssistantToolRegistry registers the tool registry in the dependency container.
type InitAssistantToolRegistry struct {
	Uow     domain.UnitOfWork           `resolve:""`
	Creator usecases.AppointmentCreator `resolve:""`
	Remover usecases.AppointmentRemover `resolve:""`
	Logger  *log.Logger                 `resolve:""`
}

// Initialize implements the symbiont initializer contract.
func (i InitAssistantToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry, err := NewToolRegistry(i.Uow, i.Creator, i.Remover, i.Logger)
	if err != nil {
		return ctx, fmt.Errorf("failed to build assistant tool registry: %w", err)
	}
	depend.Register[domain.AssistantToolRegistry](registry)
	return ctx, nil
}
