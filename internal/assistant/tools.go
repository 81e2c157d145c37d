package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	jsonschemago "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
)

// ToolKind identifies a local tool the remote assistant may call.
type ToolKind string

const (
	ToolKind_AddAppointment    ToolKind = "add_appointment_to_db"
	ToolKind_RemoveAppointment ToolKind = "remove_appointment_from_db"
)

// ParseToolKind returns the ToolKind for a tool name requested by a run.
func ParseToolKind(name string) (ToolKind, error) {
	switch ToolKind(name) {
	case ToolKind_AddAppointment, ToolKind_RemoveAppointment:
		return ToolKind(name), nil
	default:
		return "", fmt.Errorf("tool %q is not registered", name)
	}
}

// AddAppointmentArgs are the arguments of add_appointment_to_db.
type AddAppointmentArgs struct {
	PatientName     string  `json:"patient_name" jsonschema:"minLength=1,pattern=\\S" jsonschema_description:"Full name of the patient. REQUIRED."`
	AppointmentTime string  `json:"appointment_time" jsonschema:"minLength=1,pattern=\\S" jsonschema_description:"Appointment date and time in ISO-8601, e.g. 2024-05-01T10:00:00. REQUIRED."`
	Details         *string `json:"details,omitempty" jsonschema_description:"Optional reason or notes for the visit."`
}

// RemoveAppointmentArgs are the arguments of remove_appointment_from_db.
type RemoveAppointmentArgs struct {
	PatientName string `json:"patient_name" jsonschema:"minLength=1,pattern=\\S" jsonschema_description:"Full name of the patient whose appointment is cancelled. REQUIRED."`
}

// toolSpec is a tool definition plus the resolved schema its arguments are
// validated against.
type toolSpec struct {
	definition domain.AssistantToolDefinition
	validator  *jsonschemago.Resolved
}

func newToolSpec[T any](kind ToolKind, description string) (toolSpec, error) {
	schema := reflectSchema[T]()
	params, err := json.Marshal(schema)
	if err != nil {
		return toolSpec{}, fmt.Errorf("failed to marshal schema for %s: %w", kind, err)
	}

	var parameters jsonschemago.Schema
	if err := json.Unmarshal(params, &parameters); err != nil {
		return toolSpec{}, fmt.Errorf("failed to load schema for %s: %w", kind, err)
	}
	validator, err := parameters.Resolve(&jsonschemago.ResolveOptions{})
	if err != nil {
		return toolSpec{}, fmt.Errorf("failed to resolve schema for %s: %w", kind, err)
	}

	return toolSpec{
		definition: domain.AssistantToolDefinition{
			Name:        string(kind),
			Description: description,
			Parameters:  params,
		},
		validator: validator,
	}, nil
}

// reflectSchema builds an inline object schema for T with no extra properties allowed.
func reflectSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	var v T
	schema := r.Reflect(&v)
	schema.Version = ""
	return schema
}

func defaultToolSpecs() ([]toolSpec, error) {
	add, err := newToolSpec[AddAppointmentArgs](
		ToolKind_AddAppointment,
		"Book a new appointment for a patient at the given date and time.",
	)
	if err != nil {
		return nil, err
	}
	remove, err := newToolSpec[RemoveAppointmentArgs](
		ToolKind_RemoveAppointment,
		"Cancel the earliest booked appointment of a patient, looked up by patient name.",
	)
	if err != nil {
		return nil, err
	}
	return []toolSpec{add, remove}, nil
}
