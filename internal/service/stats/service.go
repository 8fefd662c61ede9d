package stats

import (
	"context"
	"sort"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	patientRepo   repository.PatientRepository
	treatmentRepo repository.TreatmentRepository
	paymentRepo   repository.PaymentRepository
}

func NewService(patientRepo repository.PatientRepository, treatmentRepo repository.TreatmentRepository, paymentRepo repository.PaymentRepository) *Service {
	return &Service{
		patientRepo:   patientRepo,
		treatmentRepo: treatmentRepo,
		paymentRepo:   paymentRepo,
	}
}

// GetStats aggregates revenue and activity counters across the store.
func (s *Service) GetStats(ctx context.Context) (*model.FinancialStats, error) {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	treatments, err := s.treatmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}

	var revenue int64
	for _, p := range payments {
		revenue += p.Amount
	}

	byType := make(map[string]int)
	for _, t := range treatments {
		byType[t.Type]++
	}
	common := make([]model.TreatmentTypeCount, 0, len(byType))
	for typ, count := range byType {
		common = append(common, model.TreatmentTypeCount{Type: typ, Count: count})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Type < common[j].Type
	})

	return &model.FinancialStats{
		TotalRevenue:     revenue,
		TreatmentCount:   len(treatments),
		PatientCount:     len(patients),
		CommonTreatments: common,
	}, nil
}
