package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/fisioagenda/fisioagenda/internal/model"
)

// Context carries the appointment and patient fields substituted into a
// reminder template. Start uses the clinic's local wall-clock time.
type Context struct {
	PatientName     string
	Start           time.Time
	Location        model.Location
	ClinicSite      string
	DomicileAddress string
}

var weekdayNames = [...]string{
	"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
}

var monthNames = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// Render substitutes the four placeholder tokens of a template body with
// values from the context. Substitution is literal find-and-replace: unknown
// placeholders stay untouched, nothing is escaped and nothing expands
// recursively. The current time is injected so the relative date label stays
// deterministic and testable.
func Render(body string, ctx Context, now time.Time) string {
	r := strings.NewReplacer(
		"{nome}", ctx.PatientName,
		"{data_relativa}", RelativeDateLabel(ctx.Start, now),
		"{ora}", ctx.Start.Format("15:04"),
		"{luogo}", locationLabel(ctx),
	)
	return r.Replace(body)
}

// Fallback builds the minimal reminder sentence used when no template is
// configured or the template store is unreachable. Reminder sending is never
// blocked by template configuration issues.
func Fallback(ctx Context, now time.Time) string {
	return fmt.Sprintf("Ciao %s, ti ricordiamo l'appuntamento di %s alle %s in %s.",
		ctx.PatientName,
		RelativeDateLabel(ctx.Start, now),
		ctx.Start.Format("15:04"),
		locationLabel(ctx),
	)
}

// Compose selects the active template from the set and renders it, falling
// back to the hard-coded sentence when the set is empty. The second return
// reports whether a configured template was used.
func Compose(templates []model.MessageTemplate, ctx Context, now time.Time) (string, bool) {
	tpl, ok := SelectTemplate(templates)
	if !ok {
		return Fallback(ctx, now), false
	}
	return Render(tpl.Body, ctx, now), true
}

// SelectTemplate returns the default-flagged template, or the first one when
// none is marked default.
func SelectTemplate(templates []model.MessageTemplate) (model.MessageTemplate, bool) {
	for _, tpl := range templates {
		if tpl.IsDefault {
			return tpl, true
		}
	}
	if len(templates) > 0 {
		return templates[0], true
	}
	return model.MessageTemplate{}, false
}

// RelativeDateLabel describes the appointment date relative to now: "oggi" on
// the same calendar day, "domani" on the next one, otherwise the full Italian
// weekday, day and month. Calendar days are the clinic's: now is converted to
// the appointment's zone before comparing, so a server clock in another zone
// cannot shift the label around midnight.
func RelativeDateLabel(start, now time.Time) string {
	now = now.In(start.Location())
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, start.Location())

	switch {
	case startDay.Equal(nowDay):
		return "oggi"
	case startDay.Equal(nowDay.AddDate(0, 0, 1)):
		return "domani"
	}
	return fmt.Sprintf("%s %d %s", weekdayNames[start.Weekday()], start.Day(), monthNames[start.Month()-1])
}

func locationLabel(ctx Context) string {
	if ctx.Location == model.LocationDomicile {
		return "al domicilio del paziente (" + ctx.DomicileAddress + ")"
	}
	return ctx.ClinicSite
}
