package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// AccountingConfigSvc serves the centralization rules used to post payroll and
// depreciation to the ledger.
type AccountingConfigSvc interface {
	GetCentralizedConfig(ctx context.Context) []domain.CentralizedAccountConfig

	// SaveCentralizedConfig stamps the submitted document with updated_at. Object keys are
	// merged at the top level, any other JSON value is returned under "config". Nothing is persisted.
	SaveCentralizedConfig(ctx context.Context, doc any) map[string]any
}
