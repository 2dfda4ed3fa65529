package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EconomicIndicator is a dated value of a Chilean economic indicator (UF, UTM, dolar...).
type EconomicIndicator struct {
	Code      string          `json:"code"`
	Name      string          `json:"name,omitempty"`
	Value     decimal.Decimal `json:"value"`
	Date      time.Time       `json:"date"`
	Unit      string          `json:"unit,omitempty"`
	Source    string          `json:"source,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IndicatorCatalog lists the indicator codes the application recognizes, with display name and unit.
var IndicatorCatalog = map[string]struct {
	Name string
	Unit string
}{
	"uf":          {Name: "Unidad de Fomento", Unit: "CLP"},
	"utm":         {Name: "Unidad Tributaria Mensual", Unit: "CLP"},
	"dolar":       {Name: "Dólar observado", Unit: "CLP"},
	"euro":        {Name: "Euro", Unit: "CLP"},
	"ipc":         {Name: "Índice de Precios al Consumidor", Unit: "%"},
	"tpm":         {Name: "Tasa de Política Monetaria", Unit: "%"},
	"imacec":      {Name: "IMACEC", Unit: "%"},
	"bitcoin":     {Name: "Bitcoin", Unit: "USD"},
	"libra_cobre": {Name: "Libra de cobre", Unit: "USD"},
}
