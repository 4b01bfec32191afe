package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/divine-glow/backoffice/internal/ledger"
	jobmetrics "github.com/divine-glow/backoffice/internal/jobs"
)

// LedgerSource supplies the merged ledger a digest summarises.
type LedgerSource interface {
	Report(ctx context.Context) []ledger.Entry
}

// NewLedgerDigestHandler returns the handler for TaskLedgerDigest. It counts
// entries and revenue for one calendar day across both sale sources.
func NewLedgerDigestHandler(source LedgerSource, metrics *jobmetrics.Metrics, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload LedgerDigestPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		tracker := metrics.Track("ledger_digest")

		day := payload.Date
		if day == "" {
			day = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		}

		var count, manual, pos int
		var revenue float64
		for _, entry := range source.Report(ctx) {
			if entry.Date != day {
				continue
			}
			count++
			revenue += entry.Total
			if entry.Source == ledger.SourceManual {
				manual++
			} else {
				pos++
			}
		}

		logger.Info("ledger digest",
			"date", day, "entries", count, "manual", manual, "pos", pos, "revenue", revenue)
		return tracker.End(nil)
	}
}
