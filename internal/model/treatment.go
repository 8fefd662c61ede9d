package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// PrescribedMedication links a treatment to a stock item.
type PrescribedMedication struct {
	MedicationID int64  `json:"medication_id"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
}

type Treatment struct {
	ID            int64                  `json:"id"`
	PatientID     int64                  `json:"patient_id"`
	Type          string                 `json:"type"` // implant, prothèse, orthodontie, ...
	Description   string                 `json:"description"`
	Cost          int64                  `json:"cost"`
	Date          time.Time              `json:"date"`
	Status        string                 `json:"status"`
	Notes         string                 `json:"notes,omitempty"`
	Medications   []PrescribedMedication `json:"medications"`
	SelectedTeeth []int                  `json:"selected_teeth"`
	PaymentStatus PaymentStatus          `json:"payment_status"`
	PaidAmount    int64                  `json:"paid_amount"`
}

type CreateTreatmentRequest struct {
	PatientID     int64                  `json:"patient_id" binding:"required"`
	Type          string                 `json:"type" binding:"required"`
	Description   string                 `json:"description" binding:"required"`
	Cost          int64                  `json:"cost" binding:"min=0"`
	Date          time.Time              `json:"date" binding:"required"`
	Status        string                 `json:"status"`
	Notes         string                 `json:"notes"`
	Medications   []PrescribedMedication `json:"medications"`
	SelectedTeeth []int                  `json:"selected_teeth" binding:"omitempty,dive,fdi_tooth"`
	PaymentStatus PaymentStatus          `json:"payment_status" binding:"omitempty,oneof=pending partial completed"`
	PaidAmount    int64                  `json:"paid_amount" binding:"min=0"`
}

type UpdateTreatmentRequest struct {
	Type          *string                 `json:"type"`
	Description   *string                 `json:"description"`
	Cost          *int64                  `json:"cost" binding:"omitempty,min=0"`
	Date          *time.Time              `json:"date"`
	Status        *string                 `json:"status"`
	Notes         *string                 `json:"notes"`
	Medications   *[]PrescribedMedication `json:"medications"`
	SelectedTeeth *[]int                  `json:"selected_teeth" binding:"omitempty,dive,fdi_tooth"`
	PaymentStatus *PaymentStatus          `json:"payment_status" binding:"omitempty,oneof=pending partial completed"`
	PaidAmount    *int64                  `json:"paid_amount" binding:"omitempty,min=0"`
}

func (r *UpdateTreatmentRequest) Apply(t *Treatment) {
	if r.Type != nil {
		t.Type = *r.Type
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Cost != nil {
		t.Cost = *r.Cost
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Notes != nil {
		t.Notes = *r.Notes
	}
	if r.Medications != nil {
		t.Medications = *r.Medications
	}
	if r.SelectedTeeth != nil {
		t.SelectedTeeth = *r.SelectedTeeth
	}
	if r.PaymentStatus != nil {
		t.PaymentStatus = *r.PaymentStatus
	}
	if r.PaidAmount != nil {
		t.PaidAmount = *r.PaidAmount
	}
}
