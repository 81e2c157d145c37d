package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/common"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToolRegistry_Definitions(t *testing.T) {
	registry, err := NewToolRegistry(nil, nil, nil, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	defs := registry.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "add_appointment_to_db", defs[0].Name)
	assert.Equal(t, "remove_appointment_from_db", defs[1].Name)
}

func TestToolRegistry_Dispatch(t *testing.T) {
	appointment := domain.Appointment{
		ID:              7,
		PatientName:     "Jane Doe",
		AppointmentTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Details:         common.Ptr("Checkup"),
	}

	inTransaction := func(uow *domain.MockUnitOfWork) {
		uow.EXPECT().
			Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
				return fn(uow)
			})
	}

	tests := map[string]struct {
		call            domain.AssistantToolCall
		setExpectations func(uow *domain.MockUnitOfWork, creator *usecases.MockAppointmentCreator, remover *usecases.MockAppointmentRemover)
		expectedOutput  string
		expectedInvalid string
	}{
		"add-appointment": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00","details":"Checkup"}`,
			},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockAppointmentCreator, remover *usecases.MockAppointmentRemover) {
				inTransaction(uow)
				creator.EXPECT().Create(mock.Anything, uow, usecases.CreateAppointmentParams{
					PatientName:     "Jane Doe",
					AppointmentTime: "2024-05-01T10:00:00",
					Details:         common.Ptr("Checkup"),
				}).Return(appointment, nil).Once()
			},
			expectedOutput: `{"message":"Appointment created successfully","appointment":{"id":7,"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00","details":"Checkup"}}`,
		},
		"add-appointment-validation-error": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":"Jane Doe","appointment_time":"someday"}`,
			},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockAppointmentCreator, remover *usecases.MockAppointmentRemover) {
				inTransaction(uow)
				creator.EXPECT().Create(mock.Anything, uow, mock.Anything).
					Return(domain.Appointment{}, domain.NewValidationErr(`appointment_time "someday" is not a valid ISO-8601 time`)).Once()
			},
			expectedOutput: `{"message":"Failed to create appointment: appointment_time \"someday\" is not a valid ISO-8601 time","appointment":null,"error":"validation_error"}`,
		},
		"add-appointment-store-error": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00"}`,
			},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockAppointmentCreator, remover *usecases.MockAppointmentRemover) {
				uow.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
			},
			expectedOutput: `{"message":"Failed to create appointment: connection refused","appointment":null,"error":"store_error"}`,
		},
		"add-appointment-missing-argument": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":"Jane Doe"}`,
			},
			expectedInvalid: "Failed to parse arguments of 'add_appointment_to_db': arguments do not match the parameter schema",
		},
		"add-appointment-malformed-json": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":`,
			},
			expectedInvalid: "Failed to parse arguments of 'add_appointment_to_db': arguments are not valid JSON",
		},
		"add-appointment-case-variant-key": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":"Jane","Patient_Name":"Bob","appointment_time":"2024-05-01T10:00:00"}`,
			},
			expectedInvalid: "Failed to parse arguments of 'add_appointment_to_db': arguments do not match the parameter schema",
		},
		"add-appointment-duplicate-key": {
			call: domain.AssistantToolCall{
				ID:        "call-1",
				Name:      "add_appointment_to_db",
				Arguments: `{"patient_name":"Jane","patient_name":"Bob","appointment_time":"2024-05-01T10:00:00"}`,
			},
			expectedInvalid: "Failed to parse arguments of 'add_appointment_to_db': duplicate argument \"patient_name\"",
		},
		"remove-appointment": {
			call: domain.AssistantToolCall{
				ID:        "call-2",
				Name:      "remove_appointment_from_db",
				Arguments: `{"patient_name":"Jane Doe"}`,
			},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockAppointmentCreator, remover *usecases.MockAppointmentRemover) {
				inTransaction(uow)
				remover.EXPECT().Remove(mock.Anything, uow, "Jane Doe").Return(appointment, nil).Once()
			},
			expectedOutput: `{"message":"Appointment removed successfully","appointment":{"id":7,"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00","details":"Checkup"}}`,
		},
		"remove-appointment-not-found": {
			call: domain.AssistantToolCall{
				ID:        "call-2",
				Name:      "remove_appointment_from_db",
				Arguments: `{"patient_name":"John Roe"}`,
			},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockAppointmentCreator, remover *usecases.MockAppointmentRemover) {
				inTransaction(uow)
				remover.EXPECT().Remove(mock.Anything, uow, "John Roe").
					Return(domain.Appointment{}, domain.NewNotFoundErr(`no appointment found for patient "John Roe"`)).Once()
			},
			expectedOutput: `{"message":"Failed to remove appointment: no appointment found for patient \"John Roe\"","appointment":null,"error":"not_found"}`,
		},
		"remove-appointment-unknown-field": {
			call: domain.AssistantToolCall{
				ID:        "call-2",
				Name:      "remove_appointment_from_db",
				Arguments: `{"patient_name":"Jane Doe","appointment_id":3}`,
			},
			expectedInvalid: "Failed to parse arguments of 'remove_appointment_from_db': arguments do not match the parameter schema",
		},
		"unknown-tool": {
			call: domain.AssistantToolCall{
				ID:        "call-3",
				Name:      "reschedule_appointment",
				Arguments: `{}`,
			},
			expectedOutput: `{"message":"Tool 'reschedule_appointment' is not registered.","appointment":null,"error":"unknown_tool"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			creator := usecases.NewMockAppointmentCreator(t)
			remover := usecases.NewMockAppointmentRemover(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, creator, remover)
			}

			registry, err := NewToolRegistry(uow, creator, remover, log.New(io.Discard, "", 0))
			require.NoError(t, err)

			got := registry.Dispatch(context.Background(), tt.call)
			assert.Equal(t, tt.call.ID, got.ToolCallID)
			if tt.expectedInvalid != "" {
				var result toolResult
				require.NoError(t, json.Unmarshal([]byte(got.Output), &result))
				assert.Equal(t, toolErr_InvalidArguments, result.Error)
				assert.Nil(t, result.Appointment)
				assert.True(t, strings.HasPrefix(result.Message, tt.expectedInvalid), result.Message)
				return
			}
			assert.JSONEq(t, tt.expectedOutput, got.Output)
		})
	}
}

func TestInitAssistantToolRegistry_Initialize(t *testing.T) {
	i := InitAssistantToolRegistry{Logger: log.New(io.Discard, "", 0)}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[domain.AssistantToolRegistry]()
	assert.NoError(t, err)
	assert.Len(t, registered.Definitions(), 2)
}
