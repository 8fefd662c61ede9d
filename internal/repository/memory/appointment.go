package memory

import (
	"context"
	"time"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

type AppointmentRepository struct {
	rows *table[model.Appointment]
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{rows: newTable[model.Appointment]()}
}

func (r *AppointmentRepository) Create(_ context.Context, apt *model.Appointment) error {
	*apt = r.rows.create(func(id int64) model.Appointment {
		apt.ID = id
		return *apt
	})
	return nil
}

func (r *AppointmentRepository) Get(_ context.Context, id int64) (*model.Appointment, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *AppointmentRepository) Update(_ context.Context, apt *model.Appointment) error {
	if !r.rows.update(apt.ID, *apt) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(_ context.Context, id int64) error {
	if !r.rows.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) List(_ context.Context) ([]*model.Appointment, error) {
	rows := r.rows.list()
	appointments := make([]*model.Appointment, len(rows))
	for i := range rows {
		appointments[i] = &rows[i]
	}
	return appointments, nil
}

// ListForDay returns appointments falling on the same calendar day as day.
func (r *AppointmentRepository) ListForDay(_ context.Context, day time.Time) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	for _, row := range r.rows.list() {
		row := row
		if row.SameDay(day) {
			appointments = append(appointments, &row)
		}
	}
	return appointments, nil
}
