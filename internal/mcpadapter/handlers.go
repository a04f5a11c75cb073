package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/api"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
)

// SolveInput is the MCP tool input schema (matches HTTP API field names).
type SolveInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional request identifier echoed in the result"`
	Day       int    `json:"day" jsonschema:"puzzle day, 1 to 5"`
	Part      int    `json:"part" jsonschema:"puzzle part, 1 or 2"`
	Variant   string `json:"variant,omitempty" jsonschema:"optional solution strategy, e.g. grid or geometric for day 3 part 2"`
	Input     string `json:"input" jsonschema:"raw puzzle input text"`
}

// SolveOutput mirrors models.SolveResult without the timestamp.
type SolveOutput struct {
	ID         string        `json:"id"`
	Day        int           `json:"day"`
	Part       int           `json:"part"`
	Variant    string        `json:"variant,omitempty"`
	Answer     string        `json:"answer,omitempty"`
	Status     models.Status `json:"status"`
	Error      string        `json:"error,omitempty"`
	Cached     bool          `json:"cached"`
	InputBytes int           `json:"input_bytes"`
	DurationNs int64         `json:"duration_ns"`
}

type ListPuzzlesInput struct{}

type ListPuzzlesOutput struct {
	Puzzles []models.PuzzleInfo `json:"puzzles"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec api.SolveExecutor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
		return SolvePuzzle(ctx, exec, req, input)
	}
}

// SolvePuzzle runs one request. Puzzle failures are reported in the output
// status rather than as tool errors.
func SolvePuzzle(
	ctx context.Context,
	exec api.SolveExecutor,
	req *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	result := exec.Execute(ctx, models.SolveRequest{
		RequestID: input.RequestID,
		Day:       input.Day,
		Part:      input.Part,
		Variant:   input.Variant,
		Input:     input.Input,
	})

	return nil, SolveOutput{
		ID:         result.ID,
		Day:        result.Day,
		Part:       result.Part,
		Variant:    result.Variant,
		Answer:     result.Answer,
		Status:     result.Status,
		Error:      result.Error,
		Cached:     result.Cached,
		InputBytes: result.InputBytes,
		DurationNs: result.Duration.Nanoseconds(),
	}, nil
}

// NewListPuzzlesHandler returns a tool handler listing the served puzzles.
func NewListPuzzlesHandler(puzzles api.PuzzleLister) func(context.Context, *mcp.CallToolRequest, ListPuzzlesInput) (*mcp.CallToolResult, ListPuzzlesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPuzzlesInput) (*mcp.CallToolResult, ListPuzzlesOutput, error) {
		return nil, ListPuzzlesOutput{Puzzles: models.NewPuzzleInfos(puzzles.List())}, nil
	}
}
