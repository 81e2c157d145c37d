package assistant

import (
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolKind(t *testing.T) {
	tests := map[string]struct {
		name     string
		expected ToolKind
		wantErr  bool
	}{
		"add":     {name: "add_appointment_to_db", expected: ToolKind_AddAppointment},
		"remove":  {name: "remove_appointment_from_db", expected: ToolKind_RemoveAppointment},
		"unknown": {name: "drop_database", wantErr: true},
		"empty":   {name: "", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseToolKind(tt.name)
			if tt.wantErr {
				assert.EqualError(t, err, `tool "`+tt.name+`" is not registered`)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDefaultToolSpecs(t *testing.T) {
	specs, err := defaultToolSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 2)

	tests := map[string]struct {
		spec               toolSpec
		expectedName       string
		expectedRequired   []string
		expectedProperties []string
	}{
		"add_appointment_to_db": {
			spec:               specs[0],
			expectedName:       "add_appointment_to_db",
			expectedRequired:   []string{"patient_name", "appointment_time"},
			expectedProperties: []string{"patient_name", "appointment_time", "details"},
		},
		"remove_appointment_from_db": {
			spec:               specs[1],
			expectedName:       "remove_appointment_from_db",
			expectedRequired:   []string{"patient_name"},
			expectedProperties: []string{"patient_name"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedName, tt.spec.definition.Name)
			assert.NotEmpty(t, tt.spec.definition.Description)
			require.NotNil(t, tt.spec.validator)

			var schema struct {
				Schema               string                    `json:"$schema"`
				ID                   string                    `json:"$id"`
				Ref                  string                    `json:"$ref"`
				Type                 string                    `json:"type"`
				Properties           map[string]map[string]any `json:"properties"`
				Required             []string                  `json:"required"`
				AdditionalProperties *bool                     `json:"additionalProperties"`
			}
			require.NoError(t, json.Unmarshal(tt.spec.definition.Parameters, &schema))

			assert.Empty(t, schema.Schema)
			assert.Empty(t, schema.ID)
			assert.Empty(t, schema.Ref)
			assert.Equal(t, "object", schema.Type)
			assert.Equal(t, tt.expectedRequired, schema.Required)
			require.NotNil(t, schema.AdditionalProperties)
			assert.False(t, *schema.AdditionalProperties)
			assert.Len(t, schema.Properties, len(tt.expectedProperties))
			for _, prop := range tt.expectedProperties {
				require.Contains(t, schema.Properties, prop)
				assert.Equal(t, "string", schema.Properties[prop]["type"])
				assert.NotEmpty(t, schema.Properties[prop]["description"])
			}
		})
	}
}

func TestDecodeToolArguments(t *testing.T) {
	specs, err := defaultToolSpecs()
	require.NoError(t, err)
	validator := specs[0].validator

	tests := map[string]struct {
		arguments   string
		expected    AddAppointmentArgs
		expectedErr string
	}{
		"valid": {
			arguments: `{"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00"}`,
			expected:  AddAppointmentArgs{PatientName: "Jane Doe", AppointmentTime: "2024-05-01T10:00:00"},
		},
		"valid-with-details": {
			arguments: `{"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00","details":"Checkup"}`,
			expected: AddAppointmentArgs{
				PatientName:     "Jane Doe",
				AppointmentTime: "2024-05-01T10:00:00",
				Details:         common.Ptr("Checkup"),
			},
		},
		"case-variant-key": {
			arguments:   `{"patient_name":"Jane","Patient_Name":"Bob","appointment_time":"2024-05-01T10:00:00"}`,
			expectedErr: "arguments do not match the parameter schema",
		},
		"duplicate-key": {
			arguments:   `{"patient_name":"Jane","patient_name":"Bob","appointment_time":"2024-05-01T10:00:00"}`,
			expectedErr: `duplicate argument "patient_name"`,
		},
		"unknown-field": {
			arguments:   `{"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00","room":"3"}`,
			expectedErr: "arguments do not match the parameter schema",
		},
		"trailing-object": {
			arguments:   `{"patient_name":"Jane Doe","appointment_time":"2024-05-01T10:00:00"}{}`,
			expectedErr: "arguments are not valid JSON",
		},
		"malformed": {
			arguments:   `{"patient_name":`,
			expectedErr: "arguments are not valid JSON",
		},
		"missing-required": {
			arguments:   `{"patient_name":"Jane Doe"}`,
			expectedErr: "arguments do not match the parameter schema",
		},
		"empty-required": {
			arguments:   `{"patient_name":"  ","appointment_time":"2024-05-01T10:00:00"}`,
			expectedErr: "arguments do not match the parameter schema",
		},
		"null-required": {
			arguments:   `{"patient_name":null,"appointment_time":"2024-05-01T10:00:00"}`,
			expectedErr: "arguments do not match the parameter schema",
		},
		"blank-arguments": {
			arguments:   "",
			expectedErr: "arguments do not match the parameter schema",
		},
		"wrong-type": {
			arguments:   `{"patient_name":42,"appointment_time":"2024-05-01T10:00:00"}`,
			expectedErr: "arguments do not match the parameter schema",
		},
		"not-an-object": {
			arguments:   `["Jane Doe"]`,
			expectedErr: "arguments do not match the parameter schema",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got AddAppointmentArgs
			err := decodeToolArguments(tt.arguments, validator, &got)
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				assert.Empty(t, got.PatientName)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
