package appointment

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

func newTestService(t *testing.T) (*Service, *model.Patient) {
	t.Helper()
	ctx := context.Background()

	patientRepo := memory.NewPatientRepository()
	patient := &model.Patient{FirstName: "Sara", LastName: "Alaoui", CIN: "SA1"}
	require.NoError(t, patientRepo.Create(ctx, patient))

	return NewService(memory.NewAppointmentRepository(), patientRepo), patient
}

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	ctx := context.Background()
	svc, patient := newTestService(t)

	apt, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID: patient.ID,
		Date:      time.Now(),
		Duration:  30,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID: 99,
		Date:      time.Now(),
		Duration:  30,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestCallThenFinishTransitions(t *testing.T) {
	ctx := context.Background()
	svc, patient := newTestService(t)

	apt, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID: patient.ID,
		Date:      time.Now(),
		Duration:  30,
	})
	require.NoError(t, err)

	called, err := svc.CallPatient(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusInProgress, called.Status)

	finished, err := svc.FinishConsultation(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, finished.Status)
}

func TestInvalidTransitionsRejected(t *testing.T) {
	ctx := context.Background()
	svc, patient := newTestService(t)

	apt, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID: patient.ID,
		Date:      time.Now(),
		Duration:  30,
	})
	require.NoError(t, err)

	// Cannot finish an appointment that was never called.
	_, err = svc.FinishConsultation(ctx, apt.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)

	// Cannot call the same appointment twice.
	_, err = svc.CallPatient(ctx, apt.ID)
	require.NoError(t, err)
	_, err = svc.CallPatient(ctx, apt.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestTransitionOnMissingAppointment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CallPatient(ctx, 123)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestWaitingRoomReflectsTransitions(t *testing.T) {
	ctx := context.Background()
	svc, patient := newTestService(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base.Add(2 * time.Hour) }

	first, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID: patient.ID,
		Date:      base,
		Duration:  30,
	})
	require.NoError(t, err)
	_, err = svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID: patient.ID,
		Date:      base.Add(time.Hour),
		Duration:  30,
	})
	require.NoError(t, err)

	queue, err := svc.WaitingRoom(ctx)
	require.NoError(t, err)
	assert.Len(t, queue.Waiting, 2)
	assert.Empty(t, queue.InConsultation)

	_, err = svc.CallPatient(ctx, first.ID)
	require.NoError(t, err)

	queue, err = svc.WaitingRoom(ctx)
	require.NoError(t, err)
	assert.Len(t, queue.Waiting, 1)
	require.Len(t, queue.InConsultation, 1)
	assert.Equal(t, first.ID, queue.InConsultation[0].AppointmentID)

	_, err = svc.FinishConsultation(ctx, first.ID)
	require.NoError(t, err)

	queue, err = svc.WaitingRoom(ctx)
	require.NoError(t, err)
	assert.Len(t, queue.Waiting, 1)
	assert.Empty(t, queue.InConsultation)
}
