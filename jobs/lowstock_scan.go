package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/divine-glow/backoffice/internal/catalog"
	jobmetrics "github.com/divine-glow/backoffice/internal/jobs"
)

// CatalogSource supplies the products a scan walks.
type CatalogSource interface {
	List(ctx context.Context) []catalog.Product
}

// NewLowStockScanHandler returns the handler for TaskLowStockScan. The scan
// is read-only: it classifies every product and publishes per-level counts.
func NewLowStockScanHandler(source CatalogSource, metrics *jobmetrics.Metrics, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload LowStockScanPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		tracker := metrics.Track("lowstock_scan")

		counts := map[catalog.StockStatus]int{}
		for _, p := range source.List(ctx) {
			status := p.Status()
			counts[status]++
			if status != catalog.StockStatusIn {
				logger.Warn("product below stock threshold",
					"id", p.ID, "name", p.Name, "stock", p.Stock, "status", status.Label())
			}
		}
		for _, status := range []catalog.StockStatus{catalog.StockStatusOut, catalog.StockStatusLow, catalog.StockStatusIn} {
			metrics.SetLowStock(string(status), counts[status])
		}

		logger.Info("low-stock scan finished",
			"out", counts[catalog.StockStatusOut], "low", counts[catalog.StockStatusLow], "in", counts[catalog.StockStatusIn])
		return tracker.End(nil)
	}
}
