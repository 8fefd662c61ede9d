package waitingroom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkadiri/dentassist-api/internal/model"
)

func at(now time.Time, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}

func TestBuildOrdersUrgentFirstThenByTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	appointments := []*model.Appointment{
		{ID: 1, PatientID: 1, Date: at(now, 9, 0), Status: model.AppointmentStatusScheduled},
		{ID: 2, PatientID: 2, Date: at(now, 10, 0), Status: model.AppointmentStatusScheduled, IsUrgent: true},
		{ID: 3, PatientID: 3, Date: at(now, 8, 0), Status: model.AppointmentStatusScheduled},
	}

	queue := Build(appointments, nil, now)

	ids := make([]int64, 0, len(queue.Waiting))
	for _, e := range queue.Waiting {
		ids = append(ids, e.AppointmentID)
	}
	// Urgent 10:00 ahead of non-urgent 08:00 and 09:00.
	assert.Equal(t, []int64{2, 3, 1}, ids)
}

func TestBuildPartitionsByStatus(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	appointments := []*model.Appointment{
		{ID: 1, Date: at(now, 9, 0), Status: model.AppointmentStatusScheduled},
		{ID: 2, Date: at(now, 9, 30), Status: model.AppointmentStatusInProgress},
		{ID: 3, Date: at(now, 10, 0), Status: model.AppointmentStatusCompleted},
	}

	queue := Build(appointments, nil, now)

	assert.Len(t, queue.Waiting, 1)
	assert.Equal(t, int64(1), queue.Waiting[0].AppointmentID)
	assert.Len(t, queue.InConsultation, 1)
	assert.Equal(t, int64(2), queue.InConsultation[0].AppointmentID)

	// Completed appointments appear in neither list.
	for _, e := range append(queue.Waiting, queue.InConsultation...) {
		assert.NotEqual(t, int64(3), e.AppointmentID)
	}
}

func TestBuildExcludesOtherDays(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	appointments := []*model.Appointment{
		{ID: 1, Date: at(now, 9, 0), Status: model.AppointmentStatusScheduled},
		{ID: 2, Date: at(now, 9, 0).AddDate(0, 0, 1), Status: model.AppointmentStatusScheduled},
		{ID: 3, Date: at(now, 9, 0).AddDate(0, 0, -1), Status: model.AppointmentStatusScheduled},
	}

	queue := Build(appointments, nil, now)

	assert.Len(t, queue.Waiting, 1)
	assert.Equal(t, int64(1), queue.Waiting[0].AppointmentID)
}

func TestBuildJoinsPatientNames(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	appointments := []*model.Appointment{
		{ID: 1, PatientID: 7, Date: at(now, 9, 0), Status: model.AppointmentStatusScheduled},
	}
	patients := []*model.Patient{
		{ID: 7, FirstName: "Amina", LastName: "El Fassi"},
	}

	queue := Build(appointments, patients, now)

	assert.Equal(t, "Amina El Fassi", queue.Waiting[0].PatientName)
}
