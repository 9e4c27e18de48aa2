package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
)

func writeAudit(
	d *audit.Dispatcher,
	action string,
	entity string,
	entityID uint,
	meta any,
) {
	d.Dispatch(audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: audit.IDPtr(entityID),
		Metadata: meta,
	})
}

// invalidateSummaries is called after writes that change what a period
// summary would contain (rates, names, entries).
func invalidateSummaries(ctx context.Context, c cache.SummaryCache, log *zap.Logger) {
	if err := c.Invalidate(ctx); err != nil {
		log.Warn("summary cache invalidation failed", zap.Error(err))
	}
}
