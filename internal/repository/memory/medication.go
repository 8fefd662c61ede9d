package memory

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

type MedicationRepository struct {
	rows *table[model.Medication]
}

func NewMedicationRepository() *MedicationRepository {
	return &MedicationRepository{rows: newTable[model.Medication]()}
}

func (r *MedicationRepository) Create(_ context.Context, medication *model.Medication) error {
	*medication = r.rows.create(func(id int64) model.Medication {
		medication.ID = id
		return *medication
	})
	return nil
}

func (r *MedicationRepository) Get(_ context.Context, id int64) (*model.Medication, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *MedicationRepository) Update(_ context.Context, medication *model.Medication) error {
	if !r.rows.update(medication.ID, *medication) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MedicationRepository) Delete(_ context.Context, id int64) error {
	if !r.rows.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MedicationRepository) List(_ context.Context) ([]*model.Medication, error) {
	rows := r.rows.list()
	medications := make([]*model.Medication, len(rows))
	for i := range rows {
		medications[i] = &rows[i]
	}
	return medications, nil
}

type StockMovementRepository struct {
	rows *table[model.StockMovement]
}

func NewStockMovementRepository() *StockMovementRepository {
	return &StockMovementRepository{rows: newTable[model.StockMovement]()}
}

func (r *StockMovementRepository) Create(_ context.Context, movement *model.StockMovement) error {
	*movement = r.rows.create(func(id int64) model.StockMovement {
		movement.ID = id
		return *movement
	})
	return nil
}

func (r *StockMovementRepository) ListByMedication(_ context.Context, medicationID int64) ([]*model.StockMovement, error) {
	var movements []*model.StockMovement
	for _, row := range r.rows.list() {
		row := row
		if row.MedicationID == medicationID {
			movements = append(movements, &row)
		}
	}
	return movements, nil
}
