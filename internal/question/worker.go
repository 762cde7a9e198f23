package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ImportWorker runs an import batch on a fixed interval until its context ends.
type ImportWorker struct {
	importer *Importer
	req      ImportRequest
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewImportWorker(importer *Importer, req ImportRequest, interval, timeout time.Duration, logger zerolog.Logger) *ImportWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ImportWorker{
		importer: importer,
		req:      req,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With().Str("component", "question_import_worker").Logger(),
	}
}

// Run blocks until context cancellation. The first batch runs immediately.
func (w *ImportWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("question import worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *ImportWorker) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if _, err := w.importer.Import(ctx, w.req); err != nil {
		w.logger.Warn().Err(err).Msg("question import failed")
	}
}
