package reminder

import (
	"errors"
	"testing"
)

func TestNormalizePhone_NationalGetsCountryCode(t *testing.T) {
	got, err := NormalizePhone("333 123 4567")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if got != "393331234567" {
		t.Fatalf("expected 393331234567, got %s", got)
	}
}

func TestNormalizePhone_InternationalPrefixes(t *testing.T) {
	for _, raw := range []string{"+39 333 1234567", "0039 333-1234567", "+39 (333) 123.4567"} {
		got, err := NormalizePhone(raw)
		if err != nil {
			t.Fatalf("normalize %q failed: %v", raw, err)
		}
		if got != "393331234567" {
			t.Fatalf("normalize %q: expected 393331234567, got %s", raw, got)
		}
	}
}

func TestNormalizePhone_ForeignNumberKept(t *testing.T) {
	got, err := NormalizePhone("+41 79 123 45 67")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if got != "41791234567" {
		t.Fatalf("expected 41791234567, got %s", got)
	}
}

func TestNormalizePhone_Missing(t *testing.T) {
	for _, raw := range []string{"", "   ", "n/a", "12345"} {
		if _, err := NormalizePhone(raw); !errors.Is(err, ErrMissingRecipient) {
			t.Fatalf("expected ErrMissingRecipient for %q, got %v", raw, err)
		}
	}
}

func TestComposeLink(t *testing.T) {
	link, err := ComposeLink("333 1234567", "Ciao Maria, alle 15:30")
	if err != nil {
		t.Fatalf("compose link failed: %v", err)
	}
	want := "https://wa.me/393331234567?text=Ciao+Maria%2C+alle+15%3A30"
	if link != want {
		t.Fatalf("expected %s, got %s", want, link)
	}
}

func TestComposeLink_MissingRecipient(t *testing.T) {
	if _, err := ComposeLink("", "body"); !errors.Is(err, ErrMissingRecipient) {
		t.Fatalf("expected ErrMissingRecipient, got %v", err)
	}
}
