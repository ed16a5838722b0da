package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

type fakeTemplateStore struct {
	templates []model.MessageTemplate
	err       error
}

func (s *fakeTemplateStore) ListMessageTemplates(context.Context) ([]model.MessageTemplate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.templates, nil
}

type fakePatientStore struct {
	patients map[string]model.Patient
}

func (s *fakePatientStore) GetPatient(_ context.Context, id string) (model.Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return model.Patient{}, pgx.ErrNoRows
	}
	return p, nil
}

func reminderFixture(t *testing.T, templates *fakeTemplateStore, phone string) (*ReminderHandler, model.Appointment) {
	t.Helper()
	store := newFakeStore()
	appt := seedAppointment(t, store, "2026-03-02T15:30", "2026-03-02T16:30", model.StatusConfirmed)
	appt.ClinicSite = "Studio FisioRoma"
	store.appts[appt.ID] = appt

	patients := &fakePatientStore{patients: map[string]model.Patient{
		"patient-1": {ID: "patient-1", FirstName: "Maria", LastName: "Rossi", Phone: phone},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReminderHandler(store, patients, templates, logger, time.UTC, nil)
	h.now = func() time.Time {
		return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	}
	return h, appt
}

func TestComposeWithTemplate(t *testing.T) {
	templates := &fakeTemplateStore{templates: []model.MessageTemplate{
		{ID: "tpl-1", Name: "standard", Body: "Ciao {nome}, ci vediamo {data_relativa} alle {ora} in {luogo}.", IsDefault: true},
	}}
	h, appt := reminderFixture(t, templates, "333 123 4567")

	rw := postJSON(t, h.Compose, composeRequest{AppointmentID: appt.ID})
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rw.Code, rw.Body.String())
	}

	var resp composeResponse
	if err := json.Unmarshal(rw.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := "Ciao Maria, ci vediamo oggi alle 15:30 in Studio FisioRoma."
	if resp.Body != want {
		t.Fatalf("expected %q, got %q", want, resp.Body)
	}
	if resp.Recipient != "393331234567" {
		t.Fatalf("expected normalized recipient 393331234567, got %q", resp.Recipient)
	}
	if resp.WhatsAppURL == "" || resp.WhatsAppURL[:len("https://wa.me/393331234567?text=")] != "https://wa.me/393331234567?text=" {
		t.Fatalf("unexpected link %q", resp.WhatsAppURL)
	}
}

func TestComposeFallbackWhenTemplateStoreFails(t *testing.T) {
	templates := &fakeTemplateStore{err: fmt.Errorf("db down")}
	h, appt := reminderFixture(t, templates, "3331234567")

	rw := postJSON(t, h.Compose, composeRequest{AppointmentID: appt.ID})
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200 despite template store failure, got %d", rw.Code)
	}

	var resp composeResponse
	if err := json.Unmarshal(rw.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := "Ciao Maria, ti ricordiamo l'appuntamento di oggi alle 15:30 in Studio FisioRoma."
	if resp.Body != want {
		t.Fatalf("expected fallback sentence %q, got %q", want, resp.Body)
	}
}

func TestComposeFallbackWhenNoTemplates(t *testing.T) {
	h, appt := reminderFixture(t, &fakeTemplateStore{}, "3331234567")

	rw := postJSON(t, h.Compose, composeRequest{AppointmentID: appt.ID})
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	var resp composeResponse
	if err := json.Unmarshal(rw.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Body == "" {
		t.Fatal("expected a composed fallback body")
	}
}

func TestComposeUsesClinicCalendarDay(t *testing.T) {
	clinic := time.FixedZone("CET", 3600)
	store := newFakeStore()
	appt, err := store.CreateAppointment(context.Background(), model.Appointment{
		PatientID:  "patient-1",
		Start:      time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC), // 09:00 clinic time
		End:        time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		Status:     model.StatusConfirmed,
		Location:   model.LocationStudio,
		ClinicSite: "Studio FisioRoma",
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	patients := &fakePatientStore{patients: map[string]model.Patient{
		"patient-1": {ID: "patient-1", FirstName: "Maria", Phone: "3331234567"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReminderHandler(store, patients, &fakeTemplateStore{}, logger, clinic, nil)
	// 23:30 UTC is 00:30 of the appointment day in the clinic zone.
	h.now = func() time.Time {
		return time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	}

	rw := postJSON(t, h.Compose, composeRequest{AppointmentID: appt.ID})
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rw.Code, rw.Body.String())
	}
	var resp composeResponse
	if err := json.Unmarshal(rw.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Body, "oggi") {
		t.Fatalf("expected the clinic-zone label oggi, got %q", resp.Body)
	}
	if !strings.Contains(resp.Body, "09:00") {
		t.Fatalf("expected clinic wall-clock time 09:00, got %q", resp.Body)
	}
}

func TestComposeMissingPhone(t *testing.T) {
	h, appt := reminderFixture(t, &fakeTemplateStore{}, "")

	rw := postJSON(t, h.Compose, composeRequest{AppointmentID: appt.ID})
	if rw.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without a phone number, got %d", rw.Code)
	}
}

func TestComposeUnknownAppointment(t *testing.T) {
	h, _ := reminderFixture(t, &fakeTemplateStore{}, "3331234567")

	rw := postJSON(t, h.Compose, composeRequest{AppointmentID: "missing"})
	if rw.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rw.Code)
	}
}

func TestTemplatesList(t *testing.T) {
	templates := &fakeTemplateStore{templates: []model.MessageTemplate{
		{ID: "tpl-1", Name: "standard", Body: "Ciao {nome}", IsDefault: true},
		{ID: "tpl-2", Name: "short", Body: "{ora} {luogo}"},
	}}
	h, _ := reminderFixture(t, templates, "3331234567")

	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/templates", nil)
	rw := httptest.NewRecorder()
	h.Templates(rw, req)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}

	var items []templateItem
	if err := json.Unmarshal(rw.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(items))
	}
	if !items[0].IsDefault {
		t.Fatal("expected the default template first")
	}
}
