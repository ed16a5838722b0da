package handlers

import (
	"context"
	"time"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

// AppointmentStore is the persistence collaborator the scheduling flows write
// through. The pgx repository implements it in production; tests use an
// in-memory fake.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, appt model.Appointment) (model.Appointment, error)
	GetAppointment(ctx context.Context, id string) (model.Appointment, error)
	UpdateAppointment(ctx context.Context, appt model.Appointment, eventType string) error
	DeleteAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context, from, to time.Time) ([]model.Appointment, error)
}

// TemplateStore supplies the message templates the reminder flow renders.
type TemplateStore interface {
	ListMessageTemplates(ctx context.Context) ([]model.MessageTemplate, error)
}

// PatientStore resolves the patient fields a reminder needs.
type PatientStore interface {
	GetPatient(ctx context.Context, id string) (model.Patient, error)
}
