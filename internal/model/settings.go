package model

type DocumentPrefix struct {
	Invoice string `json:"invoice"`
	Quote   string `json:"quote"`
}

type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Settings is a process-lifetime singleton.
type Settings struct {
	Currency       string         `json:"currency"`
	CurrencySymbol string         `json:"currency_symbol"`
	DocumentPrefix DocumentPrefix `json:"document_prefix"`
	CompanyInfo    CompanyInfo    `json:"company_info"`
}

type UpdateSettingsRequest struct {
	Currency       *string         `json:"currency"`
	CurrencySymbol *string         `json:"currency_symbol"`
	DocumentPrefix *DocumentPrefix `json:"document_prefix"`
	CompanyInfo    *CompanyInfo    `json:"company_info"`
}

func (r *UpdateSettingsRequest) Apply(s *Settings) {
	if r.Currency != nil {
		s.Currency = *r.Currency
	}
	if r.CurrencySymbol != nil {
		s.CurrencySymbol = *r.CurrencySymbol
	}
	if r.DocumentPrefix != nil {
		s.DocumentPrefix = *r.DocumentPrefix
	}
	if r.CompanyInfo != nil {
		s.CompanyInfo = *r.CompanyInfo
	}
}
