package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_APPOINTMENT_CREATED represents the event when an appointment is booked.
	EventType_APPOINTMENT_CREATED EventType = "APPOINTMENT.CREATED"
	// EventType_APPOINTMENT_REMOVED represents the event when an appointment is removed.
	EventType_APPOINTMENT_REMOVED EventType = "APPOINTMENT.REMOVED"
)

// AppointmentEvent represents an appointment domain event.
type AppointmentEvent struct {
	Type            EventType `json:"type"`
	AppointmentID   int64     `json:"appointment_id"`
	PatientName     string    `json:"patient_name"`
	AppointmentTime string    `json:"appointment_time"`
	CreatedAt       time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
