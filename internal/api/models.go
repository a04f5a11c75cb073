package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Puzzles int    `json:"puzzles"`
}
