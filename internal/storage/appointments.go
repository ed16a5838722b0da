package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fisioagenda/fisioagenda/internal/model"
	"github.com/fisioagenda/fisioagenda/internal/outbox"
	"github.com/fisioagenda/fisioagenda/libs/db"
)

const appointmentColumns = `
	id, patient_id, COALESCE(series_id::text, ''), start_time, end_time, status, is_paid,
	location, COALESCE(clinic_site, ''), COALESCE(domicile_address, ''),
	treatment, billing, amount, COALESCE(note, ''), created_at`

// AppointmentRepository persists appointments and writes the matching domain
// event in the same transaction as every mutation.
type AppointmentRepository struct {
	pool   *db.Pool
	outbox *outbox.Repository
}

func NewAppointmentRepository(pool *db.Pool, outboxRepo *outbox.Repository) *AppointmentRepository {
	return &AppointmentRepository{pool: pool, outbox: outboxRepo}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO appointments
			(patient_id, series_id, start_time, end_time, status, is_paid,
			 location, clinic_site, domicile_address, treatment, billing, amount, note)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, NULLIF($13, ''))
		RETURNING id, created_at
	`, appt.PatientID, appt.SeriesID, appt.Start, appt.End, appt.Status, appt.Paid,
		appt.Location, appt.ClinicSite, appt.DomicileAddress, appt.Treatment, appt.Billing,
		appt.Amount, appt.Note).Scan(&appt.ID, &appt.CreatedAt)
	if err != nil {
		return model.Appointment{}, err
	}

	evt, err := outbox.AppointmentEvent(outbox.EventAppointmentCreated, appt)
	if err != nil {
		return model.Appointment{}, err
	}
	if err := r.outbox.Insert(ctx, tx, evt); err != nil {
		return model.Appointment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Appointment{}, err
	}
	return appt, nil
}

func (r *AppointmentRepository) GetAppointment(ctx context.Context, id string) (model.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)
	return scanAppointment(row)
}

// UpdateAppointment rewrites every mutable field of the row. The eventType
// distinguishes a plain edit from a drag-reschedule in the published event.
func (r *AppointmentRepository) UpdateAppointment(ctx context.Context, appt model.Appointment, eventType string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET start_time = $2,
			end_time = $3,
			status = $4,
			is_paid = $5,
			location = $6,
			clinic_site = NULLIF($7, ''),
			domicile_address = NULLIF($8, ''),
			treatment = $9,
			billing = $10,
			amount = $11,
			note = NULLIF($12, '')
		WHERE id = $1
	`, appt.ID, appt.Start, appt.End, appt.Status, appt.Paid,
		appt.Location, appt.ClinicSite, appt.DomicileAddress, appt.Treatment, appt.Billing,
		appt.Amount, appt.Note)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	evt, err := outbox.AppointmentEvent(eventType, appt)
	if err != nil {
		return err
	}
	if err := r.outbox.Insert(ctx, tx, evt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// DeleteAppointment removes the record entirely. Deletion is irreversible and
// is not represented by any status value.
func (r *AppointmentRepository) DeleteAppointment(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	evt, err := outbox.AppointmentDeletedEvent(id)
	if err != nil {
		return err
	}
	if err := r.outbox.Insert(ctx, tx, evt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *AppointmentRepository) ListAppointments(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE start_time < $2 AND end_time > $1
		ORDER BY start_time ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

func scanAppointment(row pgx.Row) (model.Appointment, error) {
	var appt model.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.SeriesID,
		&appt.Start,
		&appt.End,
		&appt.Status,
		&appt.Paid,
		&appt.Location,
		&appt.ClinicSite,
		&appt.DomicileAddress,
		&appt.Treatment,
		&appt.Billing,
		&appt.Amount,
		&appt.Note,
		&appt.CreatedAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	return appt, nil
}

// IsConflict reports whether an insert or update tripped the overlap exclusion
// constraint on non-cancelled appointments. The read-then-check slot
// validation is not atomic, so this is the last-resort guard against two
// near-simultaneous writes double-booking the same window.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
