package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkadiri/dentassist-api/pkg/errors"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository/memory"
)

func newFixture(t *testing.T) (*Service, *model.Patient, *model.Treatment) {
	t.Helper()
	ctx := context.Background()

	patientRepo := memory.NewPatientRepository()
	patient := &model.Patient{FirstName: "Karim", LastName: "Idrissi", CIN: "KI1"}
	require.NoError(t, patientRepo.Create(ctx, patient))

	treatmentRepo := memory.NewTreatmentRepository()
	treatment := &model.Treatment{
		PatientID:     patient.ID,
		Description:   "Couronne céramique",
		Cost:          600,
		PaymentStatus: model.PaymentStatusPending,
	}
	require.NoError(t, treatmentRepo.Create(ctx, treatment))

	svc := NewService(memory.NewPaymentRepository(), patientRepo, treatmentRepo)
	return svc, patient, treatment
}

func getTreatment(t *testing.T, svc *Service, id int64) *model.Treatment {
	t.Helper()
	treatment, err := svc.treatmentRepo.Get(context.Background(), id)
	require.NoError(t, err)
	return treatment
}

func TestPartialPaymentUpdatesTreatment(t *testing.T) {
	ctx := context.Background()
	svc, patient, treatment := newFixture(t)

	_, err := svc.CreatePayment(ctx, &model.CreatePaymentRequest{
		PatientID:   patient.ID,
		TreatmentID: treatment.ID,
		Amount:      200,
		Date:        time.Now(),
		Type:        model.PaymentTypeAdvance,
	})
	require.NoError(t, err)

	got := getTreatment(t, svc, treatment.ID)
	assert.Equal(t, int64(200), got.PaidAmount)
	assert.Equal(t, model.PaymentStatusPartial, got.PaymentStatus)
}

func TestPaymentsAccumulateToCompleted(t *testing.T) {
	ctx := context.Background()
	svc, patient, treatment := newFixture(t)

	for _, amount := range []int64{200, 400} {
		_, err := svc.CreatePayment(ctx, &model.CreatePaymentRequest{
			PatientID:   patient.ID,
			TreatmentID: treatment.ID,
			Amount:      amount,
			Date:        time.Now(),
			Type:        model.PaymentTypeInstallment,
		})
		require.NoError(t, err)
	}

	got := getTreatment(t, svc, treatment.ID)
	assert.Equal(t, int64(600), got.PaidAmount)
	assert.Equal(t, model.PaymentStatusCompleted, got.PaymentStatus)
}

func TestCreatePaymentRejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	svc, patient, treatment := newFixture(t)

	var appErr *apperrors.AppError

	_, err := svc.CreatePayment(ctx, &model.CreatePaymentRequest{
		PatientID:   999,
		TreatmentID: treatment.ID,
		Amount:      100,
		Date:        time.Now(),
		Type:        model.PaymentTypeFull,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)

	_, err = svc.CreatePayment(ctx, &model.CreatePaymentRequest{
		PatientID:   patient.ID,
		TreatmentID: 999,
		Amount:      100,
		Date:        time.Now(),
		Type:        model.PaymentTypeFull,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestListPaymentsByPatient(t *testing.T) {
	ctx := context.Background()
	svc, patient, treatment := newFixture(t)

	_, err := svc.CreatePayment(ctx, &model.CreatePaymentRequest{
		PatientID:   patient.ID,
		TreatmentID: treatment.ID,
		Amount:      150,
		Date:        time.Now(),
		Type:        model.PaymentTypeAdvance,
	})
	require.NoError(t, err)

	payments, err := svc.ListPaymentsByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(150), payments[0].Amount)

	_, err = svc.ListPaymentsByPatient(ctx, 999)
	assert.True(t, apperrors.IsNotFound(err))
}
