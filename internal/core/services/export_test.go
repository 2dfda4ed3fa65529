package services

import (
	"time"

	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
)

// NewIndicatorServiceWithClock builds an indicator service that reads the time from now.
func NewIndicatorServiceWithClock(indicatorRepo portsrepo.IndicatorRepositoryFacade, now func() time.Time) portssvc.IndicatorSvcFacade {
	return &indicatorService{indicatorRepo: indicatorRepo, now: now}
}
