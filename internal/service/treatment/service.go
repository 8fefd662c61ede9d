package treatment

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/internal/service/medication"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	repo          repository.TreatmentRepository
	patientRepo   repository.PatientRepository
	medicationSvc *medication.Service
}

func NewService(repo repository.TreatmentRepository, patientRepo repository.PatientRepository, medicationSvc *medication.Service) *Service {
	return &Service{
		repo:          repo,
		patientRepo:   patientRepo,
		medicationSvc: medicationSvc,
	}
}

func (s *Service) CreateTreatment(ctx context.Context, req *model.CreateTreatmentRequest) (*model.Treatment, error) {
	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		return nil, errors.BadRequest("patient does not exist", err)
	}

	status := req.Status
	if status == "" {
		status = "completed"
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentStatusPending
	}

	treatment := &model.Treatment{
		PatientID:     req.PatientID,
		Type:          req.Type,
		Description:   req.Description,
		Cost:          req.Cost,
		Date:          req.Date,
		Status:        status,
		Notes:         req.Notes,
		Medications:   req.Medications,
		SelectedTeeth: req.SelectedTeeth,
		PaymentStatus: paymentStatus,
		PaidAmount:    req.PaidAmount,
	}
	if treatment.Medications == nil {
		treatment.Medications = []model.PrescribedMedication{}
	}
	if treatment.SelectedTeeth == nil {
		treatment.SelectedTeeth = []int{}
	}

	if err := s.repo.Create(ctx, treatment); err != nil {
		return nil, errors.Internal(err)
	}

	// Stock consumption is a separate, best-effort call. A shortage
	// never fails the treatment.
	if len(treatment.Medications) > 0 {
		s.medicationSvc.ConsumeForTreatment(ctx, treatment.ID, treatment.Medications)
	}

	return treatment, nil
}

func (s *Service) GetTreatment(ctx context.Context, id int64) (*model.Treatment, error) {
	treatment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("treatment", err)
	}
	return treatment, nil
}

func (s *Service) UpdateTreatment(ctx context.Context, id int64, req *model.UpdateTreatmentRequest) (*model.Treatment, error) {
	treatment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("treatment", err)
	}

	req.Apply(treatment)
	if err := s.repo.Update(ctx, treatment); err != nil {
		return nil, errors.NotFound("treatment", err)
	}
	return treatment, nil
}

func (s *Service) DeleteTreatment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFound("treatment", err)
	}
	return nil
}

func (s *Service) ListTreatmentsByPatient(ctx context.Context, patientID int64) ([]*model.Treatment, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, errors.NotFound("patient", err)
	}

	treatments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return treatments, nil
}
