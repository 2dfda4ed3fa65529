package services

import (
	"context"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
)

type accountingConfigService struct {
	BaseService
	now func() time.Time
}

// NewAccountingConfigService creates the centralization config service.
func NewAccountingConfigService() portssvc.AccountingConfigSvc {
	return &accountingConfigService{now: time.Now}
}

func (s *accountingConfigService) GetCentralizedConfig(ctx context.Context) []domain.CentralizedAccountConfig {
	return domain.DefaultCentralizedConfig()
}

func (s *accountingConfigService) SaveCentralizedConfig(ctx context.Context, doc any) map[string]any {
	var out map[string]any
	if obj, ok := doc.(map[string]any); ok {
		out = make(map[string]any, len(obj)+1)
		for k, v := range obj {
			out[k] = v
		}
	} else {
		out = map[string]any{"config": doc}
	}
	out["updated_at"] = s.now().UTC().Format(time.RFC3339)
	s.LogInfo(ctx, "Centralized config received", "keys", len(out)-1)
	return out
}
