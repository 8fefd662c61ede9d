// Package waitingroom derives the front-desk display queue from today's
// appointments.
package waitingroom

import (
	"sort"
	"time"

	"github.com/mkadiri/dentassist-api/internal/model"
)

// Entry is one row on the waiting-room board.
type Entry struct {
	AppointmentID int64     `json:"appointment_id"`
	PatientID     int64     `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	Time          time.Time `json:"time"`
	IsUrgent      bool      `json:"is_urgent"`
	IsPassenger   bool      `json:"is_passenger"`
}

// Queue splits today's non-completed appointments by status. Completed
// appointments appear in neither list.
type Queue struct {
	Waiting        []Entry `json:"waiting"`
	InConsultation []Entry `json:"in_consultation"`
}

// Build filters appointments to the calendar day of now, joins patient
// display names, orders urgent appointments first and by ascending time
// within each urgency tier, then partitions by status.
func Build(appointments []*model.Appointment, patients []*model.Patient, now time.Time) Queue {
	names := make(map[int64]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.FullName()
	}

	var todays []*model.Appointment
	for _, apt := range appointments {
		if apt.SameDay(now) {
			todays = append(todays, apt)
		}
	}

	sort.SliceStable(todays, func(i, j int) bool {
		if todays[i].IsUrgent != todays[j].IsUrgent {
			return todays[i].IsUrgent
		}
		return todays[i].Date.Before(todays[j].Date)
	})

	queue := Queue{
		Waiting:        []Entry{},
		InConsultation: []Entry{},
	}
	for _, apt := range todays {
		entry := Entry{
			AppointmentID: apt.ID,
			PatientID:     apt.PatientID,
			PatientName:   names[apt.PatientID],
			Time:          apt.Date,
			IsUrgent:      apt.IsUrgent,
			IsPassenger:   apt.IsPassenger,
		}
		switch apt.Status {
		case model.AppointmentStatusScheduled:
			queue.Waiting = append(queue.Waiting, entry)
		case model.AppointmentStatusInProgress:
			queue.InConsultation = append(queue.InConsultation, entry)
		}
	}
	return queue
}
