package patient

import (
	"context"
	"strings"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if strings.TrimSpace(req.CIN) == "" {
		return nil, errors.Validation("cin must not be empty", nil)
	}

	patient := &model.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CIN:            req.CIN,
		DateOfBirth:    req.DateOfBirth,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}
	if patient.MedicalHistory == nil {
		patient.MedicalHistory = []string{}
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, errors.Internal(err)
	}
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("patient", err)
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("patient", err)
	}

	req.Apply(patient)
	if strings.TrimSpace(patient.CIN) == "" {
		return nil, errors.Validation("cin must not be empty", nil)
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, errors.NotFound("patient", err)
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFound("patient", err)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return patients, nil
}
