package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_Validate(t *testing.T) {
	when := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		appointment Appointment
		expectedErr string
	}{
		"valid": {
			appointment: Appointment{PatientName: "John Doe", AppointmentTime: when},
		},
		"blank-name": {
			appointment: Appointment{PatientName: "   ", AppointmentTime: when},
			expectedErr: "patient_name cannot be empty",
		},
		"name-too-long": {
			appointment: Appointment{PatientName: strings.Repeat("a", 201), AppointmentTime: when},
			expectedErr: "patient_name must be at most 200 characters",
		},
		"name-at-limit": {
			appointment: Appointment{PatientName: strings.Repeat("a", 200), AppointmentTime: when},
		},
		"multibyte-name-at-limit": {
			appointment: Appointment{PatientName: strings.Repeat("é", 200), AppointmentTime: when},
		},
		"multibyte-name-too-long": {
			appointment: Appointment{PatientName: strings.Repeat("é", 201), AppointmentTime: when},
			expectedErr: "patient_name must be at most 200 characters",
		},
		"zero-time": {
			appointment: Appointment{PatientName: "John Doe"},
			expectedErr: "appointment_time cannot be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.appointment.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationErr
			assert.ErrorAs(t, err, &validationErr)
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestAppointment_String(t *testing.T) {
	details := "Annual checkup"
	tests := map[string]struct {
		appointment Appointment
		expected    string
	}{
		"with-details": {
			appointment: Appointment{
				ID:              7,
				PatientName:     "John Doe",
				AppointmentTime: time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
				Details:         &details,
			},
			expected: "ID: 7 | Patient: John Doe | Time: 2024-05-20T14:30:00 | Details: Annual checkup",
		},
		"without-details": {
			appointment: Appointment{
				ID:              8,
				PatientName:     "Jane Roe",
				AppointmentTime: time.Date(2024, 5, 21, 9, 0, 0, 0, time.UTC),
			},
			expected: "ID: 8 | Patient: Jane Roe | Time: 2024-05-21T09:00:00 | Details: -",
		},
		"fractional-seconds": {
			appointment: Appointment{
				ID:              9,
				PatientName:     "Jane Roe",
				AppointmentTime: time.Date(2024, 5, 21, 9, 0, 0, 750_000_000, time.UTC),
			},
			expected: "ID: 9 | Patient: Jane Roe | Time: 2024-05-21T09:00:00.75 | Details: -",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appointment.String())
		})
	}
}

func TestParseAppointmentTime(t *testing.T) {
	tests := map[string]struct {
		value       string
		expected    time.Time
		expectedErr string
	}{
		"iso-8601": {
			value:    "2024-05-20T14:30:00",
			expected: time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
		},
		"surrounding-spaces": {
			value:    "  2024-05-20T14:30:00 ",
			expected: time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
		},
		"space-separated": {
			value:    "2024-05-20 14:30",
			expected: time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
		},
		"date-only": {
			value:    "2024-05-20",
			expected: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		"utc-designator": {
			value:    "2024-05-20T14:30:00Z",
			expected: time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
		},
		"offset-normalized-to-utc": {
			value:    "2024-05-01T10:00:00+02:00",
			expected: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		"fractional-seconds": {
			value:    "2024-05-01T10:00:00.750",
			expected: time.Date(2024, 5, 1, 10, 0, 0, 750_000_000, time.UTC),
		},
		"microsecond-fraction": {
			value:    "2024-05-01T10:00:00.123456",
			expected: time.Date(2024, 5, 1, 10, 0, 0, 123_456_000, time.UTC),
		},
		"nanosecond-fraction": {
			value:       "2024-05-01T10:00:00.123456789",
			expectedErr: `appointment_time "2024-05-01T10:00:00.123456789" is not a valid ISO-8601 time`,
		},
		"us-date": {
			value:       "05/01/2024",
			expectedErr: `appointment_time "05/01/2024" is not a valid ISO-8601 time`,
		},
		"month-name": {
			value:       "May 1, 2024 10:00",
			expectedErr: `appointment_time "May 1, 2024 10:00" is not a valid ISO-8601 time`,
		},
		"empty": {
			value:       " ",
			expectedErr: "appointment_time cannot be empty",
		},
		"garbage": {
			value:       "next tuesday-ish",
			expectedErr: `appointment_time "next tuesday-ish" is not a valid ISO-8601 time`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAppointmentTime(tt.value)
			if tt.expectedErr != "" {
				var validationErr *ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestAppointment_FormattedTime_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		value    string
		expected string
	}{
		"naive":       {value: "2024-05-01T10:00:00", expected: "2024-05-01T10:00:00"},
		"fractional":  {value: "2024-05-01T10:00:00.750", expected: "2024-05-01T10:00:00.75"},
		"microsecond": {value: "2024-05-01T10:00:00.123456", expected: "2024-05-01T10:00:00.123456"},
		"utc":         {value: "2024-05-01T10:00:00Z", expected: "2024-05-01T10:00:00"},
		"offset":      {value: "2024-05-01T10:00:00+02:00", expected: "2024-05-01T08:00:00"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parsed, err := ParseAppointmentTime(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, Appointment{AppointmentTime: parsed}.FormattedTime())
		})
	}
}

func TestAppointment_FormattedTime_NonUTCLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	a := Appointment{AppointmentTime: time.Date(2024, 5, 1, 10, 0, 0, 0, loc)}
	assert.Equal(t, "2024-05-01T08:00:00", a.FormattedTime())
}
