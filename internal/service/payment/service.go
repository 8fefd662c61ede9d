package payment

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	repo          repository.PaymentRepository
	patientRepo   repository.PatientRepository
	treatmentRepo repository.TreatmentRepository
}

func NewService(repo repository.PaymentRepository, patientRepo repository.PatientRepository, treatmentRepo repository.TreatmentRepository) *Service {
	return &Service{
		repo:          repo,
		patientRepo:   patientRepo,
		treatmentRepo: treatmentRepo,
	}
}

func (s *Service) CreatePayment(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		return nil, errors.BadRequest("patient does not exist", err)
	}
	treatment, err := s.treatmentRepo.Get(ctx, req.TreatmentID)
	if err != nil {
		return nil, errors.BadRequest("treatment does not exist", err)
	}

	payment := &model.Payment{
		PatientID:   req.PatientID,
		TreatmentID: req.TreatmentID,
		Amount:      req.Amount,
		Date:        req.Date,
		Type:        req.Type,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, errors.Internal(err)
	}

	// Keep the treatment's payment tracking in step. Separate write,
	// no atomicity with the payment record.
	treatment.PaidAmount += payment.Amount
	switch {
	case treatment.PaidAmount >= treatment.Cost:
		treatment.PaymentStatus = model.PaymentStatusCompleted
	case treatment.PaidAmount > 0:
		treatment.PaymentStatus = model.PaymentStatusPartial
	}
	if err := s.treatmentRepo.Update(ctx, treatment); err != nil {
		return nil, errors.Internal(err)
	}

	return payment, nil
}

func (s *Service) UpdatePayment(ctx context.Context, id int64, req *model.UpdatePaymentRequest) (*model.Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("payment", err)
	}

	req.Apply(payment)
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, errors.NotFound("payment", err)
	}
	return payment, nil
}

func (s *Service) ListPaymentsByPatient(ctx context.Context, patientID int64) ([]*model.Payment, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, errors.NotFound("patient", err)
	}

	payments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return payments, nil
}
