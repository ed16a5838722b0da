package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fisioagenda/fisioagenda/internal/observability/metrics"
	"github.com/fisioagenda/fisioagenda/internal/reminder"
	"github.com/fisioagenda/fisioagenda/internal/storage"
)

type ReminderHandler struct {
	store     AppointmentStore
	patients  PatientStore
	templates TemplateStore
	logger    *slog.Logger
	loc       *time.Location
	metrics   *metrics.EngineMetrics
	now       func() time.Time
}

func NewReminderHandler(store AppointmentStore, patients PatientStore, templates TemplateStore, logger *slog.Logger, loc *time.Location, m *metrics.EngineMetrics) *ReminderHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReminderHandler{
		store:     store,
		patients:  patients,
		templates: templates,
		logger:    logger,
		loc:       loc,
		metrics:   m,
		now:       time.Now,
	}
}

type templateItem struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	IsDefault  bool   `json:"is_default"`
}

func (h *ReminderHandler) Templates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	templates, err := h.templates.ListMessageTemplates(r.Context())
	if err != nil {
		http.Error(w, "failed to list templates", http.StatusInternalServerError)
		return
	}

	items := make([]templateItem, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, templateItem{
			TemplateID: tpl.ID,
			Name:       tpl.Name,
			Body:       tpl.Body,
			IsDefault:  tpl.IsDefault,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

type composeRequest struct {
	AppointmentID string `json:"appointment_id"`
}

type composeResponse struct {
	AppointmentID string `json:"appointment_id"`
	Recipient     string `json:"recipient"`
	Body          string `json:"body"`
	WhatsAppURL   string `json:"whatsapp_url"`
}

// Compose renders the reminder message for an appointment and returns the
// pre-filled WhatsApp link. It is a pure read: nothing is sent and no state
// changes.
func (h *ReminderHandler) Compose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req composeRequest
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

	patient, err := h.patients.GetPatient(ctx, appt.PatientID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load patient", http.StatusInternalServerError)
		return
	}

	// A broken template store must not block reminding; the hard-coded
	// fallback sentence covers that case.
	templates, err := h.templates.ListMessageTemplates(ctx)
	if err != nil {
		h.logger.Warn("template lookup failed, using fallback text", "err", err)
		templates = nil
	}

	// The store may hand back timestamps in any zone; the reminder speaks
	// clinic wall-clock time.
	rctx := reminder.Context{
		PatientName:     patient.FirstName,
		Start:           appt.Start.In(h.loc),
		Location:        appt.Location,
		ClinicSite:      appt.ClinicSite,
		DomicileAddress: appt.DomicileAddress,
	}
	body, fromTemplate := reminder.Compose(templates, rctx, h.now())

	link, err := reminder.ComposeLink(patient.Phone, body)
	if err != nil {
		if errors.Is(err, reminder.ErrMissingRecipient) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to compose link", http.StatusInternalServerError)
		return
	}

	recipient, _ := reminder.NormalizePhone(patient.Phone)
	h.metrics.ObserveReminderComposed(fromTemplate)
	writeJSON(w, http.StatusOK, composeResponse{
		AppointmentID: appt.ID,
		Recipient:     recipient,
		Body:          body,
		WhatsAppURL:   link,
	})
}
