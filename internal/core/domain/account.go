package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account is a node of a company's chart of accounts.
type Account struct {
	AccountID       string      `json:"id"`         // Primary Key (UUID)
	CompanyID       string      `json:"company_id"` // FK -> companies.id
	Code            string      `json:"code"`       // Hierarchical code, e.g. "1.1.01"
	Name            string      `json:"name"`
	AccountType     AccountType `json:"account_type"`
	ParentAccountID string      `json:"parent_id,omitempty"` // Self-referencing, empty for roots
	ParentCode      string      `json:"parent_code,omitempty"`
	Level           int         `json:"level"`               // Depth in the tree, roots are 1
	IsActive        bool        `json:"is_active"`
	IsDetail        bool        `json:"is_detail"` // Only detail accounts accept journal lines
	AuditFields
}
