package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAppointmentCreatorImpl_Create(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	appointmentTime := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	details := "Annual checkup"

	tests := map[string]struct {
		params              CreateAppointmentParams
		setExpectations     func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider)
		expectedAppointment domain.Appointment
		expectedErr         error
	}{
		"success": {
			params: CreateAppointmentParams{
				PatientName:     "  Jane Doe ",
				AppointmentTime: "2024-05-01T10:00:00",
				Details:         &details,
			},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockAppointmentRepository(t)
				outbox := domain.NewMockOutboxRepository(t)
				uow.EXPECT().Appointment().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)

				repo.EXPECT().CreateAppointment(mock.Anything, domain.Appointment{
					PatientName:     "Jane Doe",
					AppointmentTime: appointmentTime,
					Details:         &details,
				}).Return(int64(7), nil)

				outbox.EXPECT().CreateAppointmentEvent(mock.Anything, domain.AppointmentEvent{
					Type:            domain.EventType_APPOINTMENT_CREATED,
					AppointmentID:   7,
					PatientName:     "Jane Doe",
					AppointmentTime: "2024-05-01T10:00:00",
					CreatedAt:       fixedTime,
				}).Return(nil)
			},
			expectedAppointment: domain.Appointment{
				ID:              7,
				PatientName:     "Jane Doe",
				AppointmentTime: appointmentTime,
				Details:         &details,
			},
		},
		"offset-time-stored-in-utc": {
			params: CreateAppointmentParams{
				PatientName:     "Jane Doe",
				AppointmentTime: "2024-05-01T12:00:00.500+02:00",
			},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockAppointmentRepository(t)
				outbox := domain.NewMockOutboxRepository(t)
				uow.EXPECT().Appointment().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)

				repo.EXPECT().CreateAppointment(mock.Anything, domain.Appointment{
					PatientName:     "Jane Doe",
					AppointmentTime: appointmentTime.Add(500 * time.Millisecond),
				}).Return(int64(8), nil)

				outbox.EXPECT().CreateAppointmentEvent(mock.Anything, domain.AppointmentEvent{
					Type:            domain.EventType_APPOINTMENT_CREATED,
					AppointmentID:   8,
					PatientName:     "Jane Doe",
					AppointmentTime: "2024-05-01T10:00:00.5",
					CreatedAt:       fixedTime,
				}).Return(nil)
			},
			expectedAppointment: domain.Appointment{
				ID:              8,
				PatientName:     "Jane Doe",
				AppointmentTime: appointmentTime.Add(500 * time.Millisecond),
			},
		},
		"non-iso-time": {
			params: CreateAppointmentParams{
				PatientName:     "Jane Doe",
				AppointmentTime: "05/01/2024",
			},
			expectedErr: domain.NewValidationErr(`appointment_time "05/01/2024" is not a valid ISO-8601 time`),
		},
		"invalid-time": {
			params: CreateAppointmentParams{
				PatientName:     "Jane Doe",
				AppointmentTime: "banana",
			},
			expectedErr: domain.NewValidationErr(`appointment_time "banana" is not a valid ISO-8601 time`),
		},
		"empty-time": {
			params: CreateAppointmentParams{
				PatientName: "Jane Doe",
			},
			expectedErr: domain.NewValidationErr("appointment_time cannot be empty"),
		},
		"empty-patient-name": {
			params: CreateAppointmentParams{
				PatientName:     "   ",
				AppointmentTime: "2024-05-01T10:00:00",
			},
			expectedErr: domain.NewValidationErr("patient_name cannot be empty"),
		},
		"patient-name-too-long": {
			params: CreateAppointmentParams{
				PatientName:     strings.Repeat("a", 201),
				AppointmentTime: "2024-05-01T10:00:00",
			},
			expectedErr: domain.NewValidationErr("patient_name must be at most 200 characters"),
		},
		"multibyte-patient-name-too-long": {
			params: CreateAppointmentParams{
				PatientName:     strings.Repeat("ñ", 201),
				AppointmentTime: "2024-05-01T10:00:00",
			},
			expectedErr: domain.NewValidationErr("patient_name must be at most 200 characters"),
		},
		"repository-error": {
			params: CreateAppointmentParams{
				PatientName:     "Jane Doe",
				AppointmentTime: "2024-05-01T10:00:00",
			},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				repo := domain.NewMockAppointmentRepository(t)
				uow.EXPECT().Appointment().Return(repo)
				repo.EXPECT().CreateAppointment(mock.Anything, mock.Anything).Return(int64(0), errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"outbox-error": {
			params: CreateAppointmentParams{
				PatientName:     "Jane Doe",
				AppointmentTime: "2024-05-01T10:00:00",
			},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockAppointmentRepository(t)
				outbox := domain.NewMockOutboxRepository(t)
				uow.EXPECT().Appointment().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				repo.EXPECT().CreateAppointment(mock.Anything, mock.Anything).Return(int64(7), nil)
				outbox.EXPECT().CreateAppointmentEvent(mock.Anything, mock.Anything).Return(errors.New("outbox error"))
			},
			expectedErr: errors.New("outbox error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			aci := NewAppointmentCreatorImpl(timeProvider)
			got, gotErr := aci.Create(context.Background(), uow, tt.params)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedAppointment, got)
		})
	}
}

func TestInitAppointmentCreator_Initialize(t *testing.T) {
	iac := InitAppointmentCreator{}

	ctx, err := iac.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[AppointmentCreator]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
