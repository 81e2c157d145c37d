package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// AppointmentTimeLayout is the ISO-8601 layout used to exchange appointment times.
// Appointment times are UTC; fractional seconds are kept when present.
const AppointmentTimeLayout = "2006-01-02T15:04:05.999999"

// isoAppointmentTime accepts ISO-8601 dates and date-times with optional
// seconds, up to microsecond fractions and an optional UTC offset.
var isoAppointmentTime = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2}(\.\d{1,6})?)?(Z|[+-]\d{2}:?\d{2})?)?$`,
)

// Appointment represents a booked appointment for a patient.
type Appointment struct {
	ID              int64
	PatientName     string
	AppointmentTime time.Time
	Details         *string
}

// Validate checks the appointment fields before it is persisted.
func (a Appointment) Validate() error {
	name := strings.TrimSpace(a.PatientName)
	if name == "" {
		return NewValidationErr("patient_name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 200 {
		return NewValidationErr("patient_name must be at most 200 characters")
	}
	if a.AppointmentTime.IsZero() {
		return NewValidationErr("appointment_time cannot be empty")
	}
	return nil
}

// FormattedTime returns the appointment time in ISO-8601 form.
func (a Appointment) FormattedTime() string {
	return a.AppointmentTime.UTC().Format(AppointmentTimeLayout)
}

// String formats the appointment for logs and assistant messages.
func (a Appointment) String() string {
	details := "-"
	if a.Details != nil {
		details = *a.Details
	}
	return fmt.Sprintf("ID: %d | Patient: %s | Time: %s | Details: %s", a.ID, a.PatientName, a.FormattedTime(), details)
}

// ParseAppointmentTime parses an ISO-8601 time string and returns it in UTC.
// Times without an offset are interpreted as UTC.
func ParseAppointmentTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewValidationErr("appointment_time cannot be empty")
	}
	invalid := NewValidationErr(fmt.Sprintf("appointment_time %q is not a valid ISO-8601 time", value))
	if !isoAppointmentTime.MatchString(value) {
		return time.Time{}, invalid
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, invalid
	}
	return t.UTC(), nil
}

// AppointmentRepository defines the interface for interacting with appointments in the data store.
type AppointmentRepository interface {
	// CreateAppointment inserts a new appointment and returns its generated id.
	CreateAppointment(ctx context.Context, appointment Appointment) (int64, error)

	// FindAppointmentByPatientName returns the oldest appointment booked for the given patient.
	FindAppointmentByPatientName(ctx context.Context, patientName string) (Appointment, bool, error)

	// ListAppointments lists appointments ordered by time, optionally filtered by patient name.
	ListAppointments(ctx context.Context, patientName *string) ([]Appointment, error)

	// DeleteAppointment removes an appointment identified by id.
	DeleteAppointment(ctx context.Context, id int64) error
}
