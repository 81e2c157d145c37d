package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	appointmentFields = []string{
		"id",
		"patient_name",
		"appointment_time",
		"details",
	}
)

// AppointmentRepository implements domain.AppointmentRepository on PostgreSQL.
type AppointmentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(br squirrel.BaseRunner) AppointmentRepository {
	return AppointmentRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateAppointment inserts the appointment and returns the generated id.
func (ar AppointmentRepository) CreateAppointment(ctx context.Context, appointment domain.Appointment) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var id int64
	err := ar.sb.
		Insert("appointments").
		Columns("patient_name", "appointment_time", "details").
		Values(appointment.PatientName, appointment.AppointmentTime, appointment.Details).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("appointment_id", id))
	return id, nil
}

// FindAppointmentByPatientName returns the oldest appointment for the patient.
func (ar AppointmentRepository) FindAppointmentByPatientName(ctx context.Context, patientName string) (domain.Appointment, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var a domain.Appointment
	err := ar.sb.
		Select(appointmentFields...).
		From("appointments").
		Where(squirrel.Eq{"patient_name": patientName}).
		OrderBy("id ASC").
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(&a.ID, &a.PatientName, &a.AppointmentTime, &a.Details)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Appointment{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Appointment{}, false, err
	}

	return a, true, nil
}

// ListAppointments lists appointments ordered by appointment time.
func (ar AppointmentRepository) ListAppointments(ctx context.Context, patientName *string) ([]domain.Appointment, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Bool("filtered", patientName != nil),
	))
	defer span.End()

	qry := ar.sb.
		Select(appointmentFields...).
		From("appointments").
		OrderBy("appointment_time ASC", "id ASC")

	if patientName != nil {
		qry = qry.Where(squirrel.Eq{"patient_name": *patientName})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.PatientName, &a.AppointmentTime, &a.Details); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return appointments, nil
}

// DeleteAppointment removes the appointment with the given id.
func (ar AppointmentRepository) DeleteAppointment(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("appointment_id", id),
	))
	defer span.End()

	_, err := ar.sb.
		Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}
