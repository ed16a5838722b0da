package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

// ErrInvalidAmount is returned when an operator-entered price override does not
// parse to a positive finite number.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// Standard returns the fixed rate for a treatment/billing combination.
func Standard(treatment model.TreatmentType, billing model.BillingType) float64 {
	cash := billing == model.BillingCash
	if treatment == model.TreatmentEquipmentOnly {
		if cash {
			return 20
		}
		return 25
	}
	if cash {
		return 35
	}
	return 40
}

// Resolve computes the price for an appointment. A non-empty override always
// wins over the rate table; both decimal comma and decimal dot are accepted.
func Resolve(treatment model.TreatmentType, billing model.BillingType, override string) (float64, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return Standard(treatment, billing), nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(override, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
