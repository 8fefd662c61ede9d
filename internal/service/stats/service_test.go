package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository/memory"
)

func TestGetStatsEmptyStore(t *testing.T) {
	svc := NewService(memory.NewPatientRepository(), memory.NewTreatmentRepository(), memory.NewPaymentRepository())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.PatientCount)
	assert.Zero(t, stats.TreatmentCount)
	assert.Empty(t, stats.CommonTreatments)
}

func TestGetStatsAggregates(t *testing.T) {
	ctx := context.Background()

	patientRepo := memory.NewPatientRepository()
	treatmentRepo := memory.NewTreatmentRepository()
	paymentRepo := memory.NewPaymentRepository()
	svc := NewService(patientRepo, treatmentRepo, paymentRepo)

	patient := &model.Patient{FirstName: "Hind", LastName: "Chraibi", CIN: "HC1"}
	require.NoError(t, patientRepo.Create(ctx, patient))

	for _, typ := range []string{"implant", "détartrage", "détartrage"} {
		require.NoError(t, treatmentRepo.Create(ctx, &model.Treatment{
			PatientID: patient.ID,
			Type:      typ,
			Cost:      100,
		}))
	}
	for _, amount := range []int64{250, 150} {
		require.NoError(t, paymentRepo.Create(ctx, &model.Payment{
			PatientID:   patient.ID,
			TreatmentID: 1,
			Amount:      amount,
			Date:        time.Now(),
			Type:        model.PaymentTypeInstallment,
		}))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(400), stats.TotalRevenue)
	assert.Equal(t, 1, stats.PatientCount)
	assert.Equal(t, 3, stats.TreatmentCount)
	require.Len(t, stats.CommonTreatments, 2)
	assert.Equal(t, "détartrage", stats.CommonTreatments[0].Type)
	assert.Equal(t, 2, stats.CommonTreatments[0].Count)
}
