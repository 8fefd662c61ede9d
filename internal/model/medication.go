package model

import "time"

type Medication struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	CurrentStock    int        `json:"current_stock"`
	MinimumStock    int        `json:"minimum_stock"`
	Unit            string     `json:"unit"` // comprimé, ml, ...
	Price           int64      `json:"price"`
	Supplier        string     `json:"supplier,omitempty"`
	LastRestockDate *time.Time `json:"last_restock_date,omitempty"`
}

// LowStock reports whether the item needs restocking.
func (m *Medication) LowStock() bool {
	return m.CurrentStock <= m.MinimumStock
}

type CreateMedicationRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	CurrentStock int    `json:"current_stock" binding:"min=0"`
	MinimumStock int    `json:"minimum_stock" binding:"min=0"`
	Unit         string `json:"unit" binding:"required"`
	Price        int64  `json:"price" binding:"min=0"`
	Supplier     string `json:"supplier"`
}

type UpdateMedicationRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	CurrentStock *int    `json:"current_stock" binding:"omitempty,min=0"`
	MinimumStock *int    `json:"minimum_stock" binding:"omitempty,min=0"`
	Unit         *string `json:"unit"`
	Price        *int64  `json:"price" binding:"omitempty,min=0"`
	Supplier     *string `json:"supplier"`
}

func (r *UpdateMedicationRequest) Apply(m *Medication) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.CurrentStock != nil {
		m.CurrentStock = *r.CurrentStock
	}
	if r.MinimumStock != nil {
		m.MinimumStock = *r.MinimumStock
	}
	if r.Unit != nil {
		m.Unit = *r.Unit
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.Supplier != nil {
		m.Supplier = *r.Supplier
	}
}
