// Package jobs runs background work over Asynq: periodic low-stock scans of
// the catalog and a daily digest of the merged sales ledger.
package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan walks the catalog and records stock-level counts.
	TaskLowStockScan = "catalog:lowstock_scan"
	// TaskLedgerDigest summarises one day of the merged sales ledger.
	TaskLedgerDigest = "ledger:digest"
)

// LowStockScanPayload carries scheduling metadata for a scan run.
type LowStockScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewLowStockScanTask constructs an Asynq task for a catalog scan.
func NewLowStockScanTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(LowStockScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, body, asynq.Queue(QueueDefault)), nil
}

// LedgerDigestPayload names the calendar day to summarise. An empty Date
// means the day before the run.
type LedgerDigestPayload struct {
	Date string `json:"date"`
}

// NewLedgerDigestTask constructs an Asynq task for a ledger digest.
func NewLedgerDigestTask(date string) (*asynq.Task, error) {
	body, err := json.Marshal(LedgerDigestPayload{Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLedgerDigest, body, asynq.Queue(QueueDefault)), nil
}
