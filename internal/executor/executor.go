package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/prechecks"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/rs/zerolog"
)

// SolutionSource resolves puzzle keys to solutions
type SolutionSource interface {
	Get(key puzzle.Key) (puzzle.Puzzle, error)
}

// AnswerCache stores answers of successful runs keyed by puzzle and input
type AnswerCache interface {
	Get(ctx context.Context, key puzzle.Key, input string) (string, bool, error)
	Set(ctx context.Context, key puzzle.Key, input string, answer string) error
}

// ResultRecorder keeps a history of executed requests
type ResultRecorder interface {
	SaveResult(ctx context.Context, result models.SolveResult) error
}

type Executor struct {
	source   SolutionSource
	checks   []prechecks.Checker
	cache    AnswerCache
	recorder ResultRecorder
	logger   *zerolog.Logger
}

// NewExecutor builds an executor. cache and recorder are optional and may be
// nil.
func NewExecutor(
	source SolutionSource,
	checks []prechecks.Checker,
	cache AnswerCache,
	recorder ResultRecorder,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		source:   source,
		checks:   checks,
		cache:    cache,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute solves one request. Failures are reported through the result
// status, never as a partial answer.
func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) models.SolveResult {
	start := time.Now()

	id := req.RequestID
	if id == "" {
		id = uuid.New().String()
	}

	result := models.SolveResult{
		ID:         id,
		Day:        req.Day,
		Part:       req.Part,
		Variant:    req.Variant,
		InputBytes: len(req.Input),
		CreatedAt:  start.UTC(),
	}

	log := e.logger.With().Str("request_id", id).Str("puzzle", req.Key().String()).Logger()

	answer, cached, err := e.solve(ctx, req, &result)
	result.Duration = time.Since(start)
	result.Cached = cached

	if err != nil {
		result.Status = statusOf(err)
		result.Error = err.Error()
	} else {
		result.Status = models.StatusOK
		result.Answer = answer
	}

	if e.recorder != nil {
		if err := e.recorder.SaveResult(ctx, result); err != nil {
			log.Warn().Err(err).Msg("failed to record result")
		}
	}

	event := log.Info()
	if result.Status == models.StatusError {
		event = log.Error()
	}
	event.
		Str("status", string(result.Status)).
		Str("error", result.Error).
		Dur("duration", result.Duration).
		Bool("cached", result.Cached).
		Msg("puzzle solved")

	return result
}

func (e *Executor) solve(ctx context.Context, req models.SolveRequest, result *models.SolveResult) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	p, err := e.source.Get(req.Key())
	if err != nil {
		return "", false, err
	}
	result.Variant = p.Key.Variant

	input := prechecks.Normalize(req.Input)
	if err := prechecks.Run(e.checks, input); err != nil {
		return "", false, err
	}

	if e.cache != nil {
		answer, ok, err := e.cache.Get(ctx, p.Key, input)
		if err != nil {
			e.logger.Warn().Err(err).Str("puzzle", p.Key.String()).Msg("answer cache lookup failed")
		} else if ok {
			return answer, true, nil
		}
	}

	value, err := run(p.Solve, input)
	if err != nil {
		return "", false, err
	}
	answer := fmt.Sprint(value)

	if e.cache != nil {
		if err := e.cache.Set(ctx, p.Key, input, answer); err != nil {
			e.logger.Warn().Err(err).Str("puzzle", p.Key.String()).Msg("failed to cache answer")
		}
	}

	return answer, false, nil
}

func run(solve puzzle.Solution, input string) (answer any, err error) {
	defer func() {
		if r := recover(); r != nil {
			answer, err = nil, fmt.Errorf("solution panicked: %v", r)
		}
	}()

	return solve(input)
}

func statusOf(err error) models.Status {
	switch {
	case errors.Is(err, puzzle.ErrInvalidInput):
		return models.StatusInvalidInput
	case errors.Is(err, puzzle.ErrNotFound):
		return models.StatusNotFound
	default:
		return models.StatusError
	}
}
