package health

// StatusOK is the only status the liveness endpoint reports.
const StatusOK = "ok"

// HealthResponse is the payload for the health endpoint.
type HealthResponse struct {
	Status string `json:"status" doc:"Liveness status" example:"ok" enum:"ok"`
}

// Output is the Huma response wrapper for the health endpoint.
type Output struct {
	Body HealthResponse
}
