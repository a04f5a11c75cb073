package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
)

const mimeText = "text/plain"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.ListPuzzles).
			Doc("List served puzzles and their variants").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes([]models.PuzzleInfo{}).
			Returns(200, "OK", []models.PuzzleInfo{}))

	ws.
		Route(ws.POST("/solve").
			To(handler.Solve).
			Doc("Solve a puzzle").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Reads(models.SolveRequest{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Found", models.SolveResult{}).
			Returns(422, "Invalid Puzzle Input", models.SolveResult{}).
			Returns(500, "Internal Server Error", models.SolveResult{}))

	ws.
		Route(ws.POST("/days/{day}/parts/{part}").
			To(handler.SolveRaw).
			Doc("Solve a puzzle from a raw input body").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Consumes(mimeText, restful.MIME_OCTET).
			Param(ws.PathParameter("day", "Puzzle day").DataType("integer")).
			Param(ws.PathParameter("part", "Puzzle part").DataType("integer")).
			Param(ws.QueryParameter("variant", "Solution strategy, the default variant when empty").DataType("string").Required(false)).
			Param(ws.HeaderParameter("X-Request-ID", "Optional request identifier").DataType("string").Required(false)).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Found", models.SolveResult{}).
			Returns(422, "Invalid Puzzle Input", models.SolveResult{}).
			Returns(500, "Internal Server Error", models.SolveResult{}))

	ws.
		Route(ws.GET("/results").
			To(handler.Results).
			Doc("Recently solved requests, newest first").
			Metadata(restfulspec.KeyOpenAPITags, []string{"results"}).
			Param(ws.QueryParameter("limit", "Maximum number of results (default: 50)").DataType("integer").Required(false)).
			Writes([]models.SolveResult{}).
			Returns(200, "OK", []models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "History Disabled", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
