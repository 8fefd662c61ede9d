package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mkadiri/dentassist-api/internal/model"
)

// ErrNotFound is returned when a record does not exist. Callers surface
// it as HTTP 404 on lookups and 400 on referenced-id writes.
var ErrNotFound = errors.New("record not found")

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Appointment, error)
		ListForDay(ctx context.Context, day time.Time) ([]*model.Appointment, error)
	}

	TreatmentRepository interface {
		Create(ctx context.Context, treatment *model.Treatment) error
		Get(ctx context.Context, id int64) (*model.Treatment, error)
		Update(ctx context.Context, treatment *model.Treatment) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Treatment, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.Treatment, error)
	}

	PaymentRepository interface {
		Create(ctx context.Context, payment *model.Payment) error
		Get(ctx context.Context, id int64) (*model.Payment, error)
		Update(ctx context.Context, payment *model.Payment) error
		List(ctx context.Context) ([]*model.Payment, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.Payment, error)
	}

	MedicationRepository interface {
		Create(ctx context.Context, medication *model.Medication) error
		Get(ctx context.Context, id int64) (*model.Medication, error)
		Update(ctx context.Context, medication *model.Medication) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Medication, error)
	}

	StockMovementRepository interface {
		Create(ctx context.Context, movement *model.StockMovement) error
		ListByMedication(ctx context.Context, medicationID int64) ([]*model.StockMovement, error)
	}

	DocumentRepository interface {
		Create(ctx context.Context, document *model.Document) error
		Get(ctx context.Context, id int64) (*model.Document, error)
		Update(ctx context.Context, document *model.Document) error
		List(ctx context.Context) ([]*model.Document, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.Document, error)
	}

	SettingsRepository interface {
		Get(ctx context.Context) (*model.Settings, error)
		Update(ctx context.Context, settings *model.Settings) error
	}
)
