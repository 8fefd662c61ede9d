package memory

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

type TreatmentRepository struct {
	rows *table[model.Treatment]
}

func NewTreatmentRepository() *TreatmentRepository {
	return &TreatmentRepository{rows: newTable[model.Treatment]()}
}

func (r *TreatmentRepository) Create(_ context.Context, treatment *model.Treatment) error {
	*treatment = r.rows.create(func(id int64) model.Treatment {
		treatment.ID = id
		return *treatment
	})
	return nil
}

func (r *TreatmentRepository) Get(_ context.Context, id int64) (*model.Treatment, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *TreatmentRepository) Update(_ context.Context, treatment *model.Treatment) error {
	if !r.rows.update(treatment.ID, *treatment) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TreatmentRepository) Delete(_ context.Context, id int64) error {
	if !r.rows.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TreatmentRepository) List(_ context.Context) ([]*model.Treatment, error) {
	rows := r.rows.list()
	treatments := make([]*model.Treatment, len(rows))
	for i := range rows {
		treatments[i] = &rows[i]
	}
	return treatments, nil
}

func (r *TreatmentRepository) ListByPatient(_ context.Context, patientID int64) ([]*model.Treatment, error) {
	var treatments []*model.Treatment
	for _, row := range r.rows.list() {
		row := row
		if row.PatientID == patientID {
			treatments = append(treatments, &row)
		}
	}
	return treatments, nil
}
