package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/api"
)

// NewServer returns an MCP server exposing the solve_puzzle and list_puzzles
// tools.
func NewServer(exec api.SolveExecutor, puzzles api.PuzzleLister) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "aoc-solver",
			Version: api.Version,
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve an Advent of Code 2018 puzzle (days 1 to 5) from its raw input text",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the available puzzles, their titles and solution variants",
	}, NewListPuzzlesHandler(puzzles))

	return server
}
