package model

import "time"

type StockMovementType string

const (
	StockMovementIn  StockMovementType = "in"
	StockMovementOut StockMovementType = "out"
)

// Stock movement reasons
const (
	StockReasonRestock   = "restock"
	StockReasonTreatment = "treatment"
	StockReasonExpired   = "expired"
)

// StockMovement records a change to a medication's stock level.
// Quantity is always positive; Type carries the direction.
type StockMovement struct {
	ID           int64             `json:"id"`
	MedicationID int64             `json:"medication_id"`
	Quantity     int               `json:"quantity"`
	Date         time.Time         `json:"date"`
	Type         StockMovementType `json:"type"`
	Reason       string            `json:"reason,omitempty"`
	TreatmentID  int64             `json:"treatment_id,omitempty"`
}

type CreateStockMovementRequest struct {
	Quantity int               `json:"quantity" binding:"required,min=1"`
	Type     StockMovementType `json:"type" binding:"required,oneof=in out"`
	Reason   string            `json:"reason"`
}
