package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// SolveExecutor runs one solve request
type SolveExecutor interface {
	Execute(ctx context.Context, req models.SolveRequest) models.SolveResult
}

type Processor struct {
	executor SolveExecutor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(executor SolveExecutor, workers int, logger *zerolog.Logger) *Processor {
	if workers <= 0 {
		workers = 1
	}
	return &Processor{executor: executor, workers: workers, logger: logger}
}

// Process solves the records with at most workers requests in flight.
// Results arrive in completion order; the channel closes once all records
// are done or ctx is canceled.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.SolveResult {
	results := make(chan models.SolveResult, p.workers)

	go func() {
		defer close(results)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if gctx.Err() != nil {
				break
			}

			g.Go(func() error {
				result := p.processRecord(gctx, record)
				select {
				case results <- result:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}

		if err := g.Wait(); err != nil {
			p.logger.Warn().Err(err).Msg("Batch processing interrupted")
		}
	}()

	return results
}

func (p *Processor) processRecord(ctx context.Context, record InputRecord) models.SolveResult {
	if record.Error != nil {
		id := record.Request.RequestID
		if id == "" {
			id = fmt.Sprintf("line-%d", record.LineNumber)
		}
		return models.SolveResult{
			ID:        id,
			Day:       record.Request.Day,
			Part:      record.Request.Part,
			Status:    models.StatusInvalidInput,
			Error:     record.Error.Error(),
			CreatedAt: time.Now().UTC(),
		}
	}

	return p.executor.Execute(ctx, record.Request)
}
