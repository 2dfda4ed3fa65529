package dto

import (
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a company.
type CreateCompanyRequest struct {
	BusinessName   string `json:"business_name" binding:"required,max=255"`
	RUT            string `json:"rut" binding:"required,rut"`
	LegalName      string `json:"legal_name" binding:"omitempty,max=255"`
	IndustrySector string `json:"industry_sector" binding:"omitempty,max=100"`
	Address        string `json:"address" binding:"omitempty,max=255"`
	Phone          string `json:"phone" binding:"omitempty,max=30"`
	Email          string `json:"email" binding:"omitempty,email"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID      string    `json:"id"`
	UserID         string    `json:"user_id"`
	BusinessName   string    `json:"business_name"`
	LegalName      string    `json:"legal_name,omitempty"`
	RUT            string    `json:"rut"`
	IndustrySector string    `json:"industry_sector,omitempty"`
	Address        string    `json:"address,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:      c.CompanyID,
		UserID:         c.UserID,
		BusinessName:   c.BusinessName,
		LegalName:      c.LegalName,
		RUT:            c.RUT,
		IndustrySector: c.IndustrySector,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to CompanyResponse DTOs
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return res
}
