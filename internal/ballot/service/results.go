package service

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
)

// ResultsService aggregates votes. Nothing is cached; every call reads the
// ledger as it is now.
type ResultsService struct {
	Store store.Store
}

// Results returns one row per candidate of the election, most votes first,
// ties in candidate creation order. An unknown election yields no rows.
func (s *ResultsService) Results(ctx context.Context, electionID string) ([]domain.Tally, error) {
	return s.Store.Votes().Tally(ctx, electionID)
}
