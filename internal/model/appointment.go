package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
)

type Appointment struct {
	ID          int64             `json:"id"`
	PatientID   int64             `json:"patient_id"`
	Date        time.Time         `json:"date"`
	Duration    int               `json:"duration"` // minutes
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	IsUrgent    bool              `json:"is_urgent"`
	IsPassenger bool              `json:"is_passenger"`
}

// SameDay reports whether the appointment falls on the given calendar day.
func (a *Appointment) SameDay(t time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type CreateAppointmentRequest struct {
	PatientID   int64             `json:"patient_id" binding:"required"`
	Date        time.Time         `json:"date" binding:"required"`
	Duration    int               `json:"duration" binding:"required,min=1"`
	Status      AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled in_progress completed"`
	Notes       string            `json:"notes"`
	IsUrgent    bool              `json:"is_urgent"`
	IsPassenger bool              `json:"is_passenger"`
}

type UpdateAppointmentRequest struct {
	Date        *time.Time         `json:"date"`
	Duration    *int               `json:"duration" binding:"omitempty,min=1"`
	Status      *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled in_progress completed"`
	Notes       *string            `json:"notes"`
	IsUrgent    *bool              `json:"is_urgent"`
	IsPassenger *bool              `json:"is_passenger"`
}

func (r *UpdateAppointmentRequest) Apply(a *Appointment) {
	if r.Date != nil {
		a.Date = *r.Date
	}
	if r.Duration != nil {
		a.Duration = *r.Duration
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
	if r.IsUrgent != nil {
		a.IsUrgent = *r.IsUrgent
	}
	if r.IsPassenger != nil {
		a.IsPassenger = *r.IsPassenger
	}
}
