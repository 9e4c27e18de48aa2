package timesheet

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/metrics"
)

type SummarizePeriod struct {
	repo   domain.Repository
	cache  cache.SummaryCache
	logger *zap.Logger
}

func NewSummarizePeriod(
	repo domain.Repository,
	cache cache.SummaryCache,
	logger *zap.Logger,
) *SummarizePeriod {
	return &SummarizePeriod{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Execute aggregates every entry dated inside the period. Cache failures
// degrade to a fresh computation.
func (uc *SummarizePeriod) Execute(
	ctx context.Context,
	period domain.Period,
) (*domain.Summary, error) {

	key := "period:" + period.Key()

	var cached domain.Summary
	gen, err := uc.cache.Get(ctx, key, &cached)
	store := true
	switch {
	case err == nil:
		metrics.RecordCacheLookup(metrics.CacheHit)
		return &cached, nil
	case errors.Is(err, cache.ErrMiss):
		metrics.RecordCacheLookup(metrics.CacheMiss)
	default:
		// the generation is unknown, so the result is not stored
		store = false
		metrics.RecordCacheLookup(metrics.CacheError)
		uc.logger.Warn("summary cache read failed", zap.Error(err))
	}

	entries, err := uc.repo.ListEntries(ctx, domain.EntryFilter{Period: &period})
	if err != nil {
		return nil, err
	}

	summary := domain.Aggregate(period, entries)

	if store {
		if err := uc.cache.Set(ctx, gen, key, summary); err != nil {
			uc.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}

	return &summary, nil
}
