package outbox

import (
	"encoding/json"
	"time"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

// Event is the domain event envelope written to the outbox table. The Kafka
// topic name equals EventType.
type Event struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

const (
	EventAppointmentCreated     = "agenda.appointment.created.v1"
	EventAppointmentUpdated     = "agenda.appointment.updated.v1"
	EventAppointmentRescheduled = "agenda.appointment.rescheduled.v1"
	EventAppointmentDeleted     = "agenda.appointment.deleted.v1"
)

// AppointmentEvent builds the outbox envelope for an appointment mutation.
func AppointmentEvent(eventType string, appt model.Appointment) (Event, error) {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID,
		"patient_id":     appt.PatientID,
		"series_id":      appt.SeriesID,
		"start":          appt.Start.Format(time.RFC3339),
		"end":            appt.End.Format(time.RFC3339),
		"status":         appt.Status,
		"paid":           appt.Paid,
		"location":       appt.Location,
		"treatment":      appt.Treatment,
		"billing":        appt.Billing,
	})
	if err != nil {
		return Event{}, err
	}
	return Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     eventType,
		Payload:       payload,
	}, nil
}

// AppointmentDeletedEvent builds the envelope for a hard delete; only the id
// survives the record.
func AppointmentDeletedEvent(appointmentID string) (Event, error) {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appointmentID,
		"deleted_at":     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Event{}, err
	}
	return Event{
		AggregateType: "appointment",
		AggregateID:   appointmentID,
		EventType:     EventAppointmentDeleted,
		Payload:       payload,
	}, nil
}
