package domain

// Company is a business entity owned by a user. All accounting data is scoped to a company.
type Company struct {
	CompanyID      string `json:"id"` // Primary Key (UUID)
	UserID         string `json:"user_id"`
	BusinessName   string `json:"business_name"`
	LegalName      string `json:"legal_name,omitempty"`
	RUT            string `json:"rut"`
	IndustrySector string `json:"industry_sector,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	IsActive       bool   `json:"is_active"`
	AuditFields
}
