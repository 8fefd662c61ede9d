package model

import "strings"

type Patient struct {
	ID             int64    `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	CIN            string   `json:"cin"`
	DateOfBirth    string   `json:"date_of_birth"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Address        string   `json:"address,omitempty"`
	MedicalHistory []string `json:"medical_history"`
}

// FullName returns the display name used on documents and the waiting-room board.
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type CreatePatientRequest struct {
	FirstName      string   `json:"first_name" binding:"required"`
	LastName       string   `json:"last_name" binding:"required"`
	CIN            string   `json:"cin" binding:"required"`
	DateOfBirth    string   `json:"date_of_birth" binding:"required"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medical_history"`
}

type UpdatePatientRequest struct {
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	CIN            *string   `json:"cin"`
	DateOfBirth    *string   `json:"date_of_birth"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	Address        *string   `json:"address"`
	MedicalHistory *[]string `json:"medical_history"`
}

// Apply merges the provided fields onto an existing patient.
func (r *UpdatePatientRequest) Apply(p *Patient) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.CIN != nil {
		p.CIN = *r.CIN
	}
	if r.DateOfBirth != nil {
		p.DateOfBirth = *r.DateOfBirth
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.MedicalHistory != nil {
		p.MedicalHistory = *r.MedicalHistory
	}
}
