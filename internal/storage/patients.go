package storage

import (
	"context"

	"github.com/fisioagenda/fisioagenda/internal/model"
	"github.com/fisioagenda/fisioagenda/libs/db"
)

// PatientRepository reads the slice of the patient record reminders need.
// Patient CRUD is owned by the surrounding application, not this service.
type PatientRepository struct {
	pool *db.Pool
}

func NewPatientRepository(pool *db.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

func (r *PatientRepository) GetPatient(ctx context.Context, id string) (model.Patient, error) {
	var p model.Patient
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, COALESCE(phone, ''), COALESCE(address, '')
		FROM patients
		WHERE id = $1
	`, id).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.Address)
	if err != nil {
		return model.Patient{}, err
	}
	return p, nil
}
