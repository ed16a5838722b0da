package model

import "time"

// Status is the lifecycle state of an appointment. Transitions are operator-driven:
// any status may move to any other by explicit choice, there is no automatic
// forward progression.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusConfirmed Status = "confirmed"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
	// StatusNotPaid marks an appointment that occurred but was never paid.
	// Distinct from cancelled, which marks one that did not occur.
	StatusNotPaid Status = "not_paid"
)

// ParseStatus maps a wire value to a Status. The mobile calendar historically
// sent "no_show" for the occurred-but-unpaid state; it is accepted as an alias
// of not_paid and never stored as a distinct value.
func ParseStatus(raw string) (Status, bool) {
	switch raw {
	case string(StatusBooked), string(StatusConfirmed), string(StatusDone),
		string(StatusCancelled), string(StatusNotPaid):
		return Status(raw), true
	case "no_show":
		return StatusNotPaid, true
	default:
		return "", false
	}
}

type Location string

const (
	LocationStudio   Location = "studio"
	LocationDomicile Location = "domicile"
)

func ParseLocation(raw string) (Location, bool) {
	switch raw {
	case string(LocationStudio), string(LocationDomicile):
		return Location(raw), true
	default:
		return "", false
	}
}

type TreatmentType string

const (
	TreatmentSession       TreatmentType = "session"
	TreatmentEquipmentOnly TreatmentType = "equipment_only"
)

func ParseTreatmentType(raw string) (TreatmentType, bool) {
	switch raw {
	case string(TreatmentSession), string(TreatmentEquipmentOnly):
		return TreatmentType(raw), true
	default:
		return "", false
	}
}

type BillingType string

const (
	BillingInvoiced BillingType = "invoiced"
	BillingCash     BillingType = "cash"
)

func ParseBillingType(raw string) (BillingType, bool) {
	switch raw {
	case string(BillingInvoiced), string(BillingCash):
		return BillingType(raw), true
	default:
		return "", false
	}
}

// Appointment is the central scheduling entity. Start/End carry local wall-clock
// semantics in the clinic's single timezone; End is always after Start.
// ClinicSite is set only for studio appointments, DomicileAddress only for
// domicile ones; the unused field stays empty.
type Appointment struct {
	ID              string
	PatientID       string
	SeriesID        string
	Start           time.Time
	End             time.Time
	Status          Status
	Paid            bool
	Location        Location
	ClinicSite      string
	DomicileAddress string
	Treatment       TreatmentType
	Billing         BillingType
	Amount          *float64
	Note            string
	CreatedAt       time.Time
}

// MessageTemplate is a reminder text with placeholder tokens. At most one
// template should carry the default flag; selection falls back to the first
// template when none does.
type MessageTemplate struct {
	ID        string
	Name      string
	Body      string
	IsDefault bool
}

// Patient is the slice of the external patient record the engine needs for
// reminders. Patient CRUD lives elsewhere.
type Patient struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}
