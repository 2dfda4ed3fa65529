package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...ServiceOption) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(options),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, caller domain.SessionUser) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, caller, req.CompanyID); err != nil {
		return nil, err
	}

	entryDate, err := time.Parse(time.DateOnly, req.EntryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("entry_date debe tener el formato YYYY-MM-DD", nil)
	}

	entryID := uuid.NewString()
	lines := make([]domain.JournalLine, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	seen := make(map[string]bool, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: strings.TrimSpace(l.Description),
		}
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			accountIDs = append(accountIDs, l.AccountID)
		}
	}

	if err := accounting.ValidateJournalBalance(lines); err != nil {
		s.LogInfo(ctx, "Rejected unbalanced journal entry", slog.String("reason", err.Error()))
		return nil, apperrors.NewValidationError("El asiento no cuadra: "+strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": "), nil)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal accounts", slog.String("company_id", req.CompanyID))
		return nil, err
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok || account.CompanyID != req.CompanyID {
			return nil, apperrors.NewValidationError(fmt.Sprintf("La cuenta %s no existe en la empresa", id), nil)
		}
		if !account.IsActive || !account.IsDetail {
			return nil, apperrors.NewValidationError(fmt.Sprintf("La cuenta %s no admite movimientos", account.Code), nil)
		}
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   req.CompanyID,
		EntryDate:   entryDate,
		Description: strings.TrimSpace(req.Description),
		Reference:   strings.TrimSpace(req.Reference),
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entryID),
		slog.String("company_id", req.CompanyID),
		slog.Int("lines", len(lines)))
	return &entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams, caller domain.SessionUser) ([]domain.JournalEntry, *string, error) {
	if err := s.AuthorizeCompany(ctx, caller, params.CompanyID); err != nil {
		return nil, nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	entries, next, err := s.journalRepo.ListEntries(ctx, params.CompanyID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, apperrors.NewValidationError("next_token inválido", nil)
		}
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("company_id", params.CompanyID))
		return nil, nil, err
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, next, nil
}

func (s *journalService) TrialBalance(ctx context.Context, companyID string, asOf time.Time, caller domain.SessionUser) ([]domain.TrialBalanceRow, error) {
	if err := s.AuthorizeCompany(ctx, caller, companyID); err != nil {
		return nil, err
	}
	rows, err := s.journalRepo.TrialBalance(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance", slog.String("company_id", companyID))
		return nil, err
	}
	if rows == nil {
		return []domain.TrialBalanceRow{}, nil
	}
	return rows, nil
}

// debugService implements DebugSvc
type debugService struct {
	BaseService
	inspector portsrepo.JournalSchemaInspector
}

// NewDebugService creates the diagnostics service. inspector may be nil.
func NewDebugService(inspector portsrepo.JournalSchemaInspector) portssvc.DebugSvc {
	return &debugService{inspector: inspector}
}

func (s *debugService) CheckJournalTables(ctx context.Context) ([]domain.JournalTableInfo, error) {
	if s.inspector == nil {
		return nil, errors.New("schema inspector not configured")
	}
	infos, err := s.inspector.InspectJournalTables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to inspect journal tables")
		return nil, err
	}
	return infos, nil
}
