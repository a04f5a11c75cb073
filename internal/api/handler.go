package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

// SolveExecutor runs one solve request
type SolveExecutor interface {
	Execute(ctx context.Context, req models.SolveRequest) models.SolveResult
}

// PuzzleLister lists the served puzzles
type PuzzleLister interface {
	List() []puzzle.Puzzle
}

// ResultHistory returns recently executed requests
type ResultHistory interface {
	RecentResults(ctx context.Context, limit int) ([]models.SolveResult, error)
}

type Handler struct {
	executor      SolveExecutor
	puzzles       PuzzleLister
	history       ResultHistory
	maxInputBytes int
	logger        *zerolog.Logger
}

// NewHandler builds the API handler. history may be nil, in which case the
// results endpoint answers 404.
func NewHandler(executor SolveExecutor, puzzles PuzzleLister, history ResultHistory, maxInputBytes int, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor:      executor,
		puzzles:       puzzles,
		history:       history,
		maxInputBytes: maxInputBytes,
		logger:        logger,
	}
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
		Puzzles: len(h.puzzles.List()),
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/puzzles
func (h *Handler) ListPuzzles(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, models.NewPuzzleInfos(h.puzzles.List()))
}

// POST /api/v1/solve
// Body: SolveRequest
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.solve(req.Request.Context(), resp, solveRequest)
}

// POST /api/v1/days/{day}/parts/{part}?variant=
// Body: raw puzzle input
func (h *Handler) SolveRaw(req *restful.Request, resp *restful.Response) {
	day, err := strconv.Atoi(req.PathParameter("day"))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("invalid day %q", req.PathParameter("day")), http.StatusBadRequest)
		return
	}
	part, err := strconv.Atoi(req.PathParameter("part"))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("invalid part %q", req.PathParameter("part")), http.StatusBadRequest)
		return
	}

	// One byte over the limit is enough for the size check to reject it
	body, err := io.ReadAll(io.LimitReader(req.Request.Body, int64(h.maxInputBytes)+1))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.solve(req.Request.Context(), resp, models.SolveRequest{
		RequestID: req.HeaderParameter("X-Request-ID"),
		Day:       day,
		Part:      part,
		Variant:   req.QueryParameter("variant"),
		Input:     string(body),
	})
}

func (h *Handler) solve(ctx context.Context, resp *restful.Response, solveRequest models.SolveRequest) {
	h.logger.Info().
		Str("request_id", solveRequest.RequestID).
		Int("day", solveRequest.Day).
		Int("part", solveRequest.Part).
		Str("variant", solveRequest.Variant).
		Msg("Start solving")

	result := h.executor.Execute(ctx, solveRequest)

	resp.WriteHeaderAndEntity(httpStatus(result.Status), result)
}

// GET /api/v1/results?limit=
func (h *Handler) Results(req *restful.Request, resp *restful.Response) {
	if h.history == nil {
		middleware.HandleError(resp, errors.New("result history is disabled"), http.StatusNotFound)
		return
	}

	limit := 0
	if limitStr := req.QueryParameter("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			middleware.HandleError(resp, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	results, err := h.history.RecentResults(req.Request.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load result history")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, results)
}

func httpStatus(status models.Status) int {
	switch status {
	case models.StatusOK:
		return http.StatusOK
	case models.StatusInvalidInput:
		return http.StatusUnprocessableEntity
	case models.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
