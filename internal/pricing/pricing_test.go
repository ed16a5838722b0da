package pricing

import (
	"errors"
	"testing"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

func TestStandardRates(t *testing.T) {
	if v := Standard(model.TreatmentSession, model.BillingInvoiced); v != 40 {
		t.Fatalf("expected session/invoiced 40, got %v", v)
	}
	if v := Standard(model.TreatmentSession, model.BillingCash); v != 35 {
		t.Fatalf("expected session/cash 35, got %v", v)
	}
	if v := Standard(model.TreatmentEquipmentOnly, model.BillingInvoiced); v != 25 {
		t.Fatalf("expected equipment/invoiced 25, got %v", v)
	}
	if v := Standard(model.TreatmentEquipmentOnly, model.BillingCash); v != 20 {
		t.Fatalf("expected equipment/cash 20, got %v", v)
	}
}

func TestResolveOverrideWins(t *testing.T) {
	v, err := Resolve(model.TreatmentSession, model.BillingInvoiced, "99")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 99 {
		t.Fatalf("expected override 99, got %v", v)
	}
}

func TestResolveDecimalComma(t *testing.T) {
	v, err := Resolve(model.TreatmentSession, model.BillingCash, "37,50")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 37.5 {
		t.Fatalf("expected 37.5, got %v", v)
	}

	v, err = Resolve(model.TreatmentSession, model.BillingCash, "37.50")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 37.5 {
		t.Fatalf("expected 37.5, got %v", v)
	}
}

func TestResolveEmptyOverrideUsesTable(t *testing.T) {
	v, err := Resolve(model.TreatmentEquipmentOnly, model.BillingCash, "  ")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 20 {
		t.Fatalf("expected standard 20, got %v", v)
	}
}

func TestResolveInvalidOverrides(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5", "12,3,4", "Inf", "NaN"} {
		if _, err := Resolve(model.TreatmentSession, model.BillingInvoiced, raw); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %q, got %v", raw, err)
		}
	}
}
