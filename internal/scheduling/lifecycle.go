package scheduling

import (
	"errors"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

// ErrIllegalPaymentState is returned when an appointment that is not done is
// being marked paid.
var ErrIllegalPaymentState = errors.New("only a done appointment can be marked paid")

// SetStatus applies a status transition. Every status is reachable from every
// other by explicit operator choice; the one invariant is that the paid flag
// may only be true while the status is done, so any transition away from done
// clears it. This holds even when the same request tries to set paid at the
// same time: status wins.
func SetStatus(appt *model.Appointment, status model.Status) {
	appt.Status = status
	if status != model.StatusDone {
		appt.Paid = false
	}
}

// SetPaid updates the payment flag. Marking paid is only legal while the
// appointment is done; clearing the flag is always legal.
func SetPaid(appt *model.Appointment, paid bool) error {
	if paid && appt.Status != model.StatusDone {
		return ErrIllegalPaymentState
	}
	appt.Paid = paid
	return nil
}

// ToggleDone is the quick-toggle: it flips between done and confirmed only.
// Leaving done clears the paid flag through SetStatus; toggling to done does
// not auto-mark the appointment paid.
func ToggleDone(appt *model.Appointment) {
	if appt.Status == model.StatusDone {
		SetStatus(appt, model.StatusConfirmed)
		return
	}
	SetStatus(appt, model.StatusDone)
}
