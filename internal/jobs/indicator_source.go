package jobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	mindicadorSource = "mindicador.cl"
	maxPayloadBytes  = 1 << 20
)

// IndicatorSource fetches the current value of the economic indicators.
type IndicatorSource interface {
	Fetch(ctx context.Context) ([]domain.EconomicIndicator, error)
}

// MindicadorSource reads the daily indicators published by mindicador.cl.
// The payload carries one object per code: {"uf": {"valor": 37245.12, "fecha": "..."}, ...}.
type MindicadorSource struct {
	url    string
	client *http.Client
}

// NewMindicadorSource creates a source for url. timeout bounds each request.
func NewMindicadorSource(url string, timeout time.Duration) *MindicadorSource {
	return &MindicadorSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch returns one value per known indicator code present in the payload.
// Codes missing from the payload or carrying a non-numeric value are skipped.
func (s *MindicadorSource) Fetch(ctx context.Context) ([]domain.EconomicIndicator, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build indicator request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch indicators: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch indicators: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read indicators: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("read indicators: invalid JSON payload")
	}

	return parseMindicador(body, time.Now()), nil
}

func parseMindicador(body []byte, now time.Time) []domain.EconomicIndicator {
	codes := make([]string, 0, len(domain.IndicatorCatalog))
	for code := range domain.IndicatorCatalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]domain.EconomicIndicator, 0, len(codes))
	for _, code := range codes {
		node := gjson.GetBytes(body, code)
		if !node.Exists() {
			continue
		}
		valor := node.Get("valor")
		if valor.Type != gjson.Number {
			continue
		}
		value, err := decimal.NewFromString(valor.Raw)
		if err != nil {
			continue
		}

		// Dates are published at local midnight; the UTC calendar day matches it.
		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if published, err := time.Parse(time.RFC3339, node.Get("fecha").String()); err == nil {
			published = published.UTC()
			date = time.Date(published.Year(), published.Month(), published.Day(), 0, 0, 0, 0, time.UTC)
		}

		meta := domain.IndicatorCatalog[code]
		out = append(out, domain.EconomicIndicator{
			Code:      code,
			Name:      meta.Name,
			Value:     value,
			Date:      date,
			Unit:      meta.Unit,
			Source:    mindicadorSource,
			UpdatedAt: now,
		})
	}
	return out
}
