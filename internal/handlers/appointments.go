package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fisioagenda/fisioagenda/internal/model"
	"github.com/fisioagenda/fisioagenda/internal/observability/metrics"
	"github.com/fisioagenda/fisioagenda/internal/outbox"
	"github.com/fisioagenda/fisioagenda/internal/pricing"
	"github.com/fisioagenda/fisioagenda/internal/scheduling"
	"github.com/fisioagenda/fisioagenda/internal/storage"
)

// The calendar is single-timezone with local wall-clock semantics, so the API
// speaks zone-less timestamps interpreted in the clinic's configured location.
const (
	timeLayout = "2006-01-02T15:04"
	dateLayout = "2006-01-02"
)

// SlotConfig shapes the free-slot grid.
type SlotConfig struct {
	Granularity  time.Duration
	DayStartHour int
	DayEndHour   int
}

type AppointmentHandler struct {
	store   AppointmentStore
	logger  *slog.Logger
	loc     *time.Location
	slots   SlotConfig
	metrics *metrics.EngineMetrics
}

func NewAppointmentHandler(store AppointmentStore, logger *slog.Logger, loc *time.Location, slots SlotConfig, m *metrics.EngineMetrics) *AppointmentHandler {
	if loc == nil {
		loc = time.Local
	}
	if slots.Granularity <= 0 {
		slots.Granularity = 30 * time.Minute
	}
	if slots.DayEndHour <= slots.DayStartHour {
		slots.DayStartHour = 8
		slots.DayEndHour = 20
	}
	return &AppointmentHandler{
		store:   store,
		logger:  logger,
		loc:     loc,
		slots:   slots,
		metrics: m,
	}
}

type createAppointmentRequest struct {
	PatientID       string             `json:"patient_id"`
	Start           string             `json:"start"`
	End             string             `json:"end"`
	Location        string             `json:"location"`
	ClinicSite      string             `json:"clinic_site"`
	DomicileAddress string             `json:"domicile_address"`
	Treatment       string             `json:"treatment"`
	Billing         string             `json:"billing"`
	AmountOverride  string             `json:"amount_override"`
	Note            string             `json:"note"`
	Recurrence      *recurrenceRequest `json:"recurrence"`
}

type recurrenceRequest struct {
	Weekdays []int  `json:"weekdays"`
	Until    string `json:"until"`
}

type createAppointmentResponse struct {
	AppointmentIDs []string `json:"appointment_ids"`
	SeriesID       string   `json:"series_id,omitempty"`
	Created        int      `json:"created"`
}

type appointmentItem struct {
	AppointmentID   string   `json:"appointment_id"`
	PatientID       string   `json:"patient_id"`
	SeriesID        string   `json:"series_id,omitempty"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Status          string   `json:"status"`
	Paid            bool     `json:"paid"`
	Location        string   `json:"location"`
	ClinicSite      string   `json:"clinic_site,omitempty"`
	DomicileAddress string   `json:"domicile_address,omitempty"`
	Treatment       string   `json:"treatment"`
	Billing         string   `json:"billing"`
	Amount          *float64 `json:"amount,omitempty"`
	Note            string   `json:"note,omitempty"`
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	req.PatientID = strings.TrimSpace(req.PatientID)
	if req.PatientID == "" {
		http.Error(w, "patient_id required", http.StatusBadRequest)
		return
	}

	start, err := time.ParseInLocation(timeLayout, req.Start, h.loc)
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}
	end, err := time.ParseInLocation(timeLayout, req.End, h.loc)
	if err != nil {
		http.Error(w, "invalid end", http.StatusBadRequest)
		return
	}
	if err := scheduling.ValidateInterval(start, end); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	location, ok := model.ParseLocation(req.Location)
	if !ok {
		http.Error(w, "location must be studio or domicile", http.StatusBadRequest)
		return
	}
	clinicSite, domicileAddress := splitLocationFields(location, req.ClinicSite, req.DomicileAddress)

	treatment, ok := model.ParseTreatmentType(req.Treatment)
	if !ok {
		http.Error(w, "unknown treatment type", http.StatusBadRequest)
		return
	}
	billing, ok := model.ParseBillingType(req.Billing)
	if !ok {
		http.Error(w, "unknown billing type", http.StatusBadRequest)
		return
	}

	amount, err := pricing.Resolve(treatment, billing, req.AmountOverride)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	duration := end.Sub(start)
	occurrences := []time.Time{start}
	recurring := req.Recurrence != nil
	var seriesID string
	if recurring {
		weekdays, err := scheduling.WeekdaySet(req.Recurrence.Weekdays)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		until, err := time.ParseInLocation(dateLayout, req.Recurrence.Until, h.loc)
		if err != nil {
			http.Error(w, "invalid until date", http.StatusBadRequest)
			return
		}
		occurrences, err = scheduling.GenerateOccurrences(start, until, weekdays)
		if err != nil {
			var tooLarge *scheduling.RecurrenceTooLargeError
			if errors.As(err, &tooLarge) {
				h.metrics.ObserveRecurrenceRejected()
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(occurrences) == 0 {
			http.Error(w, "recurrence produced no occurrences", http.StatusBadRequest)
			return
		}
		seriesID = uuid.NewString()
	}

	ctx := r.Context()
	for _, occStart := range occurrences {
		conflict, err := h.hasConflict(ctx, occStart, occStart.Add(duration), "")
		if err != nil {
			http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
			return
		}
		if conflict {
			h.metrics.ObserveConflict()
			http.Error(w, fmt.Sprintf("time slot not available on %s", occStart.Format(timeLayout)), http.StatusConflict)
			return
		}
	}

	// Occurrences are inserted sequentially in ascending order. The batch is
	// not atomic: a mid-batch store failure aborts the remaining inserts and
	// reports how many already committed, without rolling them back.
	created := make([]string, 0, len(occurrences))
	for _, occStart := range occurrences {
		appt := model.Appointment{
			PatientID:       req.PatientID,
			SeriesID:        seriesID,
			Start:           occStart,
			End:             occStart.Add(duration),
			Status:          model.StatusBooked,
			Location:        location,
			ClinicSite:      clinicSite,
			DomicileAddress: domicileAddress,
			Treatment:       treatment,
			Billing:         billing,
			Amount:          &amount,
			Note:            strings.TrimSpace(req.Note),
		}
		saved, err := h.store.CreateAppointment(ctx, appt)
		if err != nil {
			status := http.StatusInternalServerError
			msg := "failed to create appointment"
			if storage.IsConflict(err) {
				h.metrics.ObserveConflict()
				status = http.StatusConflict
				msg = "time slot already booked"
			}
			h.logger.Error("appointment insert aborted", "err", err, "created", len(created), "requested", len(occurrences))
			writeJSON(w, status, map[string]any{
				"error":           msg,
				"created":         len(created),
				"requested":       len(occurrences),
				"appointment_ids": created,
			})
			return
		}
		created = append(created, saved.ID)
	}

	h.metrics.ObserveCreated(recurring, len(created))
	writeJSON(w, http.StatusCreated, createAppointmentResponse{
		AppointmentIDs: created,
		SeriesID:       seriesID,
		Created:        len(created),
	})
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	from, err := time.ParseInLocation(dateLayout, strings.TrimSpace(r.URL.Query().Get("from")), h.loc)
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	to, err := time.ParseInLocation(dateLayout, strings.TrimSpace(r.URL.Query().Get("to")), h.loc)
	if err != nil {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}
	if to.Before(from) {
		http.Error(w, "to precedes from", http.StatusBadRequest)
		return
	}

	appts, err := h.store.ListAppointments(r.Context(), from, to.AddDate(0, 0, 1))
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	items := make([]appointmentItem, 0, len(appts))
	for _, appt := range appts {
		items = append(items, toItem(appt))
	}
	writeJSON(w, http.StatusOK, items)
}

type updateAppointmentRequest struct {
	AppointmentID   string  `json:"appointment_id"`
	Start           *string `json:"start"`
	End             *string `json:"end"`
	Status          *string `json:"status"`
	Paid            *bool   `json:"paid"`
	Location        *string `json:"location"`
	ClinicSite      *string `json:"clinic_site"`
	DomicileAddress *string `json:"domicile_address"`
	Treatment       *string `json:"treatment"`
	Billing         *string `json:"billing"`
	AmountOverride  *string `json:"amount_override"`
	Note            *string `json:"note"`
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	appt, err := h.store.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	if req.Start != nil || req.End != nil {
		start, end := appt.Start, appt.End
		if req.Start != nil {
			start, err = time.ParseInLocation(timeLayout, *req.Start, h.loc)
			if err != nil {
				http.Error(w, "invalid start", http.StatusBadRequest)
				return
			}
		}
		if req.End != nil {
			end, err = time.ParseInLocation(timeLayout, *req.End, h.loc)
			if err != nil {
				http.Error(w, "invalid end", http.StatusBadRequest)
				return
			}
		}
		if err := scheduling.ValidateInterval(start, end); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		conflict, err := h.hasConflict(ctx, start, end, appt.ID)
		if err != nil {
			http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
			return
		}
		if conflict {
			h.metrics.ObserveConflict()
			http.Error(w, "time slot not available", http.StatusConflict)
			return
		}
		appt.Start, appt.End = start, end
	}

	if req.Location != nil {
		location, ok := model.ParseLocation(*req.Location)
		if !ok {
			http.Error(w, "location must be studio or domicile", http.StatusBadRequest)
			return
		}
		appt.Location = location
	}
	if req.ClinicSite != nil {
		appt.ClinicSite = strings.TrimSpace(*req.ClinicSite)
	}
	if req.DomicileAddress != nil {
		appt.DomicileAddress = strings.TrimSpace(*req.DomicileAddress)
	}
	appt.ClinicSite, appt.DomicileAddress = splitLocationFields(appt.Location, appt.ClinicSite, appt.DomicileAddress)

	if req.Treatment != nil {
		treatment, ok := model.ParseTreatmentType(*req.Treatment)
		if !ok {
			http.Error(w, "unknown treatment type", http.StatusBadRequest)
			return
		}
		appt.Treatment = treatment
	}
	if req.Billing != nil {
		billing, ok := model.ParseBillingType(*req.Billing)
		if !ok {
			http.Error(w, "unknown billing type", http.StatusBadRequest)
			return
		}
		appt.Billing = billing
	}
	if req.AmountOverride != nil {
		amount, err := pricing.Resolve(appt.Treatment, appt.Billing, *req.AmountOverride)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		appt.Amount = &amount
	}
	if req.Note != nil {
		appt.Note = strings.TrimSpace(*req.Note)
	}

	statusChanged := false
	if req.Status != nil {
		status, ok := model.ParseStatus(*req.Status)
		if !ok {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		scheduling.SetStatus(&appt, status)
		statusChanged = true
	}
	if req.Paid != nil {
		// When a single request moves the status away from done and tries to
		// mark paid at the same time, status wins and the flag stays cleared.
		if statusChanged && appt.Status != model.StatusDone && *req.Paid {
			h.logger.Warn("paid flag ignored: status is not done", "appointment_id", appt.ID, "status", appt.Status)
		} else if err := scheduling.SetPaid(&appt, *req.Paid); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}

	if err := h.persistUpdate(w, ctx, appt, outbox.EventAppointmentUpdated); err != nil {
		return
	}
	writeJSON(w, http.StatusOK, toItem(appt))
}

type rescheduleRequest struct {
	AppointmentID string `json:"appointment_id"`
	Start         string `json:"start"`
}

// Reschedule moves an appointment to a new start, preserving its duration.
// This backs the calendar drag-and-drop.
func (h *AppointmentHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	start, err := time.ParseInLocation(timeLayout, req.Start, h.loc)
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	appt, err := h.store.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	duration := appt.End.Sub(appt.Start)
	end := start.Add(duration)
	conflict, err := h.hasConflict(ctx, start, end, appt.ID)
	if err != nil {
		http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
		return
	}
	if conflict {
		h.metrics.ObserveConflict()
		http.Error(w, "time slot not available", http.StatusConflict)
		return
	}

	appt.Start, appt.End = start, end
	if err := h.persistUpdate(w, ctx, appt, outbox.EventAppointmentRescheduled); err != nil {
		return
	}
	writeJSON(w, http.StatusOK, toItem(appt))
}

type duplicateRequest struct {
	AppointmentID string `json:"appointment_id"`
	Start         string `json:"start"`
}

// Duplicate creates a fresh booked appointment from an existing one at a new
// start, keeping the duration and every non-time field. Status and payment do
// not carry over.
func (h *AppointmentHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req duplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	start, err := time.ParseInLocation(timeLayout, req.Start, h.loc)
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	src, err := h.store.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	end := start.Add(src.End.Sub(src.Start))
	conflict, err := h.hasConflict(ctx, start, end, "")
	if err != nil {
		http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
		return
	}
	if conflict {
		h.metrics.ObserveConflict()
		http.Error(w, "time slot not available", http.StatusConflict)
		return
	}

	copyAppt := model.Appointment{
		PatientID:       src.PatientID,
		Start:           start,
		End:             end,
		Status:          model.StatusBooked,
		Location:        src.Location,
		ClinicSite:      src.ClinicSite,
		DomicileAddress: src.DomicileAddress,
		Treatment:       src.Treatment,
		Billing:         src.Billing,
		Amount:          src.Amount,
		Note:            src.Note,
	}
	saved, err := h.store.CreateAppointment(ctx, copyAppt)
	if err != nil {
		if storage.IsConflict(err) {
			h.metrics.ObserveConflict()
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveCreated(false, 1)
	writeJSON(w, http.StatusCreated, toItem(saved))
}

type toggleDoneRequest struct {
	AppointmentID string `json:"appointment_id"`
}

func (h *AppointmentHandler) ToggleDone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req toggleDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	appt, err := h.store.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	scheduling.ToggleDone(&appt)
	if err := h.persistUpdate(w, ctx, appt, outbox.EventAppointmentUpdated); err != nil {
		return
	}
	writeJSON(w, http.StatusOK, toItem(appt))
}

type deleteRequest struct {
	AppointmentID string `json:"appointment_id"`
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteAppointment(r.Context(), req.AppointmentID); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete appointment", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(r.URL.Query().Get("date")), h.loc)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	existing, err := h.blockingIntervals(r.Context(), day, day.AddDate(0, 0, 1), "")
	if err != nil {
		http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
		return
	}

	free := scheduling.FreeSlots(day, existing, h.slots.Granularity, h.slots.DayStartHour, h.slots.DayEndHour)
	type slotItem struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	items := make([]slotItem, 0, len(free))
	for _, s := range free {
		items = append(items, slotItem{
			Start: s.Start.Format(timeLayout),
			End:   s.End.Format(timeLayout),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// hasConflict loads the candidate day's appointments fresh from the store and
// checks the candidate interval against them. Read and write are not atomic:
// two near-simultaneous operations can both pass here, which the exclusion
// constraint catches at commit (storage.IsConflict).
func (h *AppointmentHandler) hasConflict(ctx context.Context, start, end time.Time, excludeID string) (bool, error) {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, h.loc)
	existing, err := h.blockingIntervals(ctx, dayStart, dayStart.AddDate(0, 0, 1), excludeID)
	if err != nil {
		return false, err
	}
	return scheduling.Overlaps(scheduling.Interval{Start: start, End: end}, existing), nil
}

func (h *AppointmentHandler) blockingIntervals(ctx context.Context, from, to time.Time, excludeID string) ([]scheduling.Interval, error) {
	appts, err := h.store.ListAppointments(ctx, from, to)
	if err != nil {
		return nil, err
	}
	var existing []scheduling.Interval
	for _, a := range appts {
		if a.ID == excludeID {
			continue
		}
		// Cancelled appointments did not occur and do not block the slot.
		if a.Status == model.StatusCancelled {
			continue
		}
		existing = append(existing, scheduling.Interval{Start: a.Start, End: a.End})
	}
	return existing, nil
}

func (h *AppointmentHandler) persistUpdate(w http.ResponseWriter, ctx context.Context, appt model.Appointment, eventType string) error {
	if err := h.store.UpdateAppointment(ctx, appt, eventType); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return err
		}
		if storage.IsConflict(err) {
			h.metrics.ObserveConflict()
			http.Error(w, "time slot already booked", http.StatusConflict)
			return err
		}
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return err
	}
	return nil
}

func splitLocationFields(location model.Location, clinicSite, domicileAddress string) (string, string) {
	if location == model.LocationDomicile {
		return "", strings.TrimSpace(domicileAddress)
	}
	return strings.TrimSpace(clinicSite), ""
}

func toItem(appt model.Appointment) appointmentItem {
	return appointmentItem{
		AppointmentID:   appt.ID,
		PatientID:       appt.PatientID,
		SeriesID:        appt.SeriesID,
		Start:           appt.Start.Format(timeLayout),
		End:             appt.End.Format(timeLayout),
		Status:          string(appt.Status),
		Paid:            appt.Paid,
		Location:        string(appt.Location),
		ClinicSite:      appt.ClinicSite,
		DomicileAddress: appt.DomicileAddress,
		Treatment:       string(appt.Treatment),
		Billing:         string(appt.Billing),
		Amount:          appt.Amount,
		Note:            appt.Note,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
