package medication

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	repo         repository.MedicationRepository
	movementRepo repository.StockMovementRepository
}

func NewService(repo repository.MedicationRepository, movementRepo repository.StockMovementRepository) *Service {
	return &Service{
		repo:         repo,
		movementRepo: movementRepo,
	}
}

func (s *Service) CreateMedication(ctx context.Context, req *model.CreateMedicationRequest) (*model.Medication, error) {
	medication := &model.Medication{
		Name:         req.Name,
		Description:  req.Description,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Unit:         req.Unit,
		Price:        req.Price,
		Supplier:     req.Supplier,
	}

	if err := s.repo.Create(ctx, medication); err != nil {
		return nil, errors.Internal(err)
	}
	return medication, nil
}

func (s *Service) GetMedication(ctx context.Context, id int64) (*model.Medication, error) {
	medication, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("medication", err)
	}
	return medication, nil
}

func (s *Service) UpdateMedication(ctx context.Context, id int64, req *model.UpdateMedicationRequest) (*model.Medication, error) {
	medication, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("medication", err)
	}

	req.Apply(medication)
	if err := s.repo.Update(ctx, medication); err != nil {
		return nil, errors.NotFound("medication", err)
	}
	return medication, nil
}

func (s *Service) DeleteMedication(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFound("medication", err)
	}
	return nil
}

func (s *Service) ListMedications(ctx context.Context) ([]*model.Medication, error) {
	medications, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return medications, nil
}

// ListLowStock returns items at or below their minimum stock level.
func (s *Service) ListLowStock(ctx context.Context) ([]*model.Medication, error) {
	medications, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}

	low := make([]*model.Medication, 0)
	for _, m := range medications {
		if m.LowStock() {
			low = append(low, m)
		}
	}
	return low, nil
}

// RecordMovement adjusts the stock level and records the movement.
// Outgoing movements cannot take the stock below zero.
func (s *Service) RecordMovement(ctx context.Context, medicationID int64, req *model.CreateStockMovementRequest) (*model.StockMovement, error) {
	medication, err := s.repo.Get(ctx, medicationID)
	if err != nil {
		return nil, errors.NotFound("medication", err)
	}

	switch req.Type {
	case model.StockMovementIn:
		medication.CurrentStock += req.Quantity
		now := time.Now()
		medication.LastRestockDate = &now
	case model.StockMovementOut:
		if req.Quantity > medication.CurrentStock {
			return nil, errors.BadRequest("insufficient stock", nil)
		}
		medication.CurrentStock -= req.Quantity
	}

	if err := s.repo.Update(ctx, medication); err != nil {
		return nil, errors.Internal(err)
	}

	movement := &model.StockMovement{
		MedicationID: medicationID,
		Quantity:     req.Quantity,
		Date:         time.Now(),
		Type:         req.Type,
		Reason:       req.Reason,
	}
	if err := s.movementRepo.Create(ctx, movement); err != nil {
		return nil, errors.Internal(err)
	}
	return movement, nil
}

func (s *Service) ListMovements(ctx context.Context, medicationID int64) ([]*model.StockMovement, error) {
	if _, err := s.repo.Get(ctx, medicationID); err != nil {
		return nil, errors.NotFound("medication", err)
	}

	movements, err := s.movementRepo.ListByMedication(ctx, medicationID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return movements, nil
}

// ConsumeForTreatment records outgoing movements for the medications a
// treatment prescribes. Best effort: a shortage is logged and skipped,
// there is no rollback of the treatment.
func (s *Service) ConsumeForTreatment(ctx context.Context, treatmentID int64, prescriptions []model.PrescribedMedication) {
	for _, p := range prescriptions {
		medication, err := s.repo.Get(ctx, p.MedicationID)
		if err != nil {
			log.Warn().Int64("medication_id", p.MedicationID).Int64("treatment_id", treatmentID).
				Msg("prescribed medication not in stock catalogue")
			continue
		}

		if p.Quantity > medication.CurrentStock {
			log.Warn().Int64("medication_id", p.MedicationID).Int64("treatment_id", treatmentID).
				Int("requested", p.Quantity).Int("available", medication.CurrentStock).
				Msg("insufficient stock for prescription")
			continue
		}

		medication.CurrentStock -= p.Quantity
		if err := s.repo.Update(ctx, medication); err != nil {
			log.Error().Err(err).Int64("medication_id", p.MedicationID).Msg("failed to decrement stock")
			continue
		}

		movement := &model.StockMovement{
			MedicationID: p.MedicationID,
			Quantity:     p.Quantity,
			Date:         time.Now(),
			Type:         model.StockMovementOut,
			Reason:       model.StockReasonTreatment,
			TreatmentID:  treatmentID,
		}
		if err := s.movementRepo.Create(ctx, movement); err != nil {
			log.Error().Err(err).Int64("medication_id", p.MedicationID).Msg("failed to record stock movement")
		}
	}
}
