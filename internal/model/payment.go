package model

import "time"

type PaymentType string

const (
	PaymentTypeAdvance     PaymentType = "advance"
	PaymentTypeFull        PaymentType = "full"
	PaymentTypeInstallment PaymentType = "installment"
)

type Payment struct {
	ID          int64       `json:"id"`
	PatientID   int64       `json:"patient_id"`
	TreatmentID int64       `json:"treatment_id"`
	Amount      int64       `json:"amount"`
	Date        time.Time   `json:"date"`
	Type        PaymentType `json:"type"`
	Notes       string      `json:"notes,omitempty"`
}

type CreatePaymentRequest struct {
	PatientID   int64       `json:"patient_id" binding:"required"`
	TreatmentID int64       `json:"treatment_id" binding:"required"`
	Amount      int64       `json:"amount" binding:"required,min=1"`
	Date        time.Time   `json:"date" binding:"required"`
	Type        PaymentType `json:"type" binding:"required,oneof=advance full installment"`
	Notes       string      `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount *int64       `json:"amount" binding:"omitempty,min=1"`
	Date   *time.Time   `json:"date"`
	Type   *PaymentType `json:"type" binding:"omitempty,oneof=advance full installment"`
	Notes  *string      `json:"notes"`
}

func (r *UpdatePaymentRequest) Apply(p *Payment) {
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	if r.Date != nil {
		p.Date = *r.Date
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}
