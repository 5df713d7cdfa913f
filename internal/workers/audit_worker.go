package workers

import (
	"context"
	"time"

	"autozar_backend/internal/logger"
	"autozar_backend/internal/metrics"
	"autozar_backend/internal/models"
	"autozar_backend/internal/services"
)

// AuditWorker periodically audits persisted listings of every category and
// exports the counts as gauges.
type AuditWorker struct {
	gate     services.PublicationGate
	interval time.Duration
}

func NewAuditWorker(gate services.PublicationGate, interval time.Duration) *AuditWorker {
	return &AuditWorker{gate: gate, interval: interval}
}

// Run audits once immediately, then on every tick until ctx is done.
func (w *AuditWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		logger.Info("Audit worker disabled")
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.auditAll(ctx)
		select {
		case <-ctx.Done():
			logger.Info("Audit worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (w *AuditWorker) auditAll(ctx context.Context) {
	for _, c := range models.Categories {
		if ctx.Err() != nil {
			return
		}
		report, err := w.gate.Audit(ctx, c)
		if err != nil {
			logger.Error("Error auditing listings", "category", c, "error", err)
			continue
		}
		metrics.PersistedRecords.WithLabelValues(string(c), "valid").Set(float64(report.Valid))
		metrics.PersistedRecords.WithLabelValues(string(c), "malformed").Set(float64(report.Malformed))
		if report.Malformed > 0 {
			logger.Warn("Malformed listing records found",
				"category", c,
				"malformed", report.Malformed,
				"valid", report.Valid,
			)
		}
	}
}
