package memory

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

type PaymentRepository struct {
	rows *table[model.Payment]
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{rows: newTable[model.Payment]()}
}

func (r *PaymentRepository) Create(_ context.Context, payment *model.Payment) error {
	*payment = r.rows.create(func(id int64) model.Payment {
		payment.ID = id
		return *payment
	})
	return nil
}

func (r *PaymentRepository) Get(_ context.Context, id int64) (*model.Payment, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *PaymentRepository) Update(_ context.Context, payment *model.Payment) error {
	if !r.rows.update(payment.ID, *payment) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) List(_ context.Context) ([]*model.Payment, error) {
	rows := r.rows.list()
	payments := make([]*model.Payment, len(rows))
	for i := range rows {
		payments[i] = &rows[i]
	}
	return payments, nil
}

func (r *PaymentRepository) ListByPatient(_ context.Context, patientID int64) ([]*model.Payment, error) {
	var payments []*model.Payment
	for _, row := range r.rows.list() {
		row := row
		if row.PatientID == patientID {
			payments = append(payments, &row)
		}
	}
	return payments, nil
}
