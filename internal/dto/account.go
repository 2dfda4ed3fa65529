package dto

import (
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// InitializeChartRequest selects the company that receives the default chart of accounts.
type InitializeChartRequest struct {
	CompanyID string `json:"company_id" binding:"required,uuid"`
}

// CreateAccountRequest defines the data needed to add one account to a chart.
type CreateAccountRequest struct {
	CompanyID       string             `json:"company_id" binding:"required,uuid"`
	Code            string             `json:"code" binding:"required,max=20"`
	Name            string             `json:"name" binding:"required,max=255"`
	AccountType     domain.AccountType `json:"account_type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentAccountID *string            `json:"parent_id" binding:"omitempty,uuid"`
	IsDetail        *bool              `json:"is_detail"` // Defaults to true
}

// ListAccountsParams defines query parameters for listing a chart of accounts.
type ListAccountsParams struct {
	CompanyID string `form:"company_id" binding:"required,uuid"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"id"`
	CompanyID       string             `json:"company_id"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"account_type"`
	ParentAccountID string             `json:"parent_id,omitempty"`
	ParentCode      string             `json:"parent_code,omitempty"`
	Level           int                `json:"level"`
	IsActive        bool               `json:"is_active"`
	IsDetail        bool               `json:"is_detail"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ChartInitializedResponse reports the outcome of CreateBasicChartOfAccounts.
type ChartInitializedResponse struct {
	CompanyID string            `json:"company_id"`
	Created   int64             `json:"created"`
	Accounts  []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		CompanyID:       acc.CompanyID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		ParentAccountID: acc.ParentAccountID,
		ParentCode:      acc.ParentCode,
		Level:           acc.Level,
		IsActive:        acc.IsActive,
		IsDetail:        acc.IsDetail,
		CreatedAt:       acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
