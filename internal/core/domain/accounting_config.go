package domain

// CentralizedAccountConfig maps a payroll concept to the accounts used when centralizing it.
type CentralizedAccountConfig struct {
	Module        string `json:"module"`
	Concept       string `json:"concept"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
	Description   string `json:"description"`
}

// DefaultCentralizedConfig is the static centralization setup returned when nothing is configured.
func DefaultCentralizedConfig() []CentralizedAccountConfig {
	return []CentralizedAccountConfig{
		{Module: "payroll", Concept: "sueldo_base", DebitAccount: "5.1.01", CreditAccount: "2.1.05", Description: "Remuneraciones por pagar"},
		{Module: "payroll", Concept: "afp", DebitAccount: "2.1.05", CreditAccount: "2.1.06", Description: "Cotizaciones AFP por pagar"},
		{Module: "payroll", Concept: "salud", DebitAccount: "2.1.05", CreditAccount: "2.1.07", Description: "Cotizaciones de salud por pagar"},
		{Module: "payroll", Concept: "impuesto_unico", DebitAccount: "2.1.05", CreditAccount: "2.1.04", Description: "Impuesto único de segunda categoría"},
		{Module: "fixed_assets", Concept: "depreciacion", DebitAccount: "5.1.04", CreditAccount: "1.2.02", Description: "Depreciación del ejercicio"},
	}
}
