package model

import "time"

type DocumentType string

const (
	DocumentTypeFacture       DocumentType = "facture"
	DocumentTypeDevis         DocumentType = "devis"
	DocumentTypeNoteHonoraire DocumentType = "note_honoraire"
)

type DocumentStatus string

const (
	DocumentStatusDraft DocumentStatus = "draft"
	DocumentStatusFinal DocumentStatus = "final"
)

// DocumentItem is one billed treatment line on a document.
type DocumentItem struct {
	TreatmentID int64  `json:"treatment_id"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
}

// Document is a generated billing artifact. Only Status is mutable
// after creation.
type Document struct {
	ID        int64             `json:"id"`
	PatientID int64             `json:"patient_id"`
	Type      DocumentType      `json:"type"`
	Number    string            `json:"number"` // FAC-2026-001, DEV-2026-001, ...
	Data      map[string]string `json:"data"`
	Items     []DocumentItem    `json:"items"`
	Total     int64             `json:"total"`
	Date      time.Time         `json:"date"`
	Notes     string            `json:"notes,omitempty"`
	Status    DocumentStatus    `json:"status"`
}

type CreateDocumentRequest struct {
	PatientID    int64        `json:"patient_id" binding:"required"`
	Type         DocumentType `json:"type" binding:"required,oneof=facture devis note_honoraire"`
	TreatmentIDs []int64      `json:"treatment_ids"`
	Notes        string       `json:"notes"`
}

type UpdateDocumentStatusRequest struct {
	Status DocumentStatus `json:"status" binding:"required,oneof=draft final"`
}
