package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a dated accounting entry made of balanced debit/credit lines.
type JournalEntry struct {
	EntryID     string        `json:"id"`
	CompanyID   string        `json:"company_id"`
	EntryDate   time.Time     `json:"entry_date"`
	Description string        `json:"description"`
	Reference   string        `json:"reference,omitempty"`
	Lines       []JournalLine `json:"lines"`
	AuditFields
}

// JournalLine is a single debit or credit against one account.
type JournalLine struct {
	LineID      string          `json:"id"`
	EntryID     string          `json:"entry_id"`
	AccountID   string          `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// TotalDebit sums the debit side of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// TrialBalanceRow is one account's debit/credit totals up to a date.
type TrialBalanceRow struct {
	AccountID   string          `json:"account_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// JournalTableInfo describes a journal table for schema diagnostics.
type JournalTableInfo struct {
	TableName string        `json:"table_name"`
	Exists    bool          `json:"exists"`
	RowCount  int64         `json:"row_count"`
	Columns   []TableColumn `json:"columns"`
}

// TableColumn is one column as reported by information_schema.
type TableColumn struct {
	Name       string `json:"column_name"`
	DataType   string `json:"data_type"`
	IsNullable bool   `json:"is_nullable"`
}
