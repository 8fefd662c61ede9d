package memory

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

type PatientRepository struct {
	rows *table[model.Patient]
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{rows: newTable[model.Patient]()}
}

func (r *PatientRepository) Create(_ context.Context, patient *model.Patient) error {
	*patient = r.rows.create(func(id int64) model.Patient {
		patient.ID = id
		return *patient
	})
	return nil
}

func (r *PatientRepository) Get(_ context.Context, id int64) (*model.Patient, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *PatientRepository) Update(_ context.Context, patient *model.Patient) error {
	if !r.rows.update(patient.ID, *patient) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PatientRepository) Delete(_ context.Context, id int64) error {
	if !r.rows.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PatientRepository) List(_ context.Context) ([]*model.Patient, error) {
	rows := r.rows.list()
	patients := make([]*model.Patient, len(rows))
	for i := range rows {
		patients[i] = &rows[i]
	}
	return patients, nil
}
