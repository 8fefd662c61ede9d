package model

// TreatmentTypeCount is one entry of the per-type treatment breakdown.
type TreatmentTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type FinancialStats struct {
	TotalRevenue     int64                `json:"total_revenue"`
	TreatmentCount   int                  `json:"treatment_count"`
	PatientCount     int                  `json:"patient_count"`
	CommonTreatments []TreatmentTypeCount `json:"common_treatments"`
}
