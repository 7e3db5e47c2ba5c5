package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Register wires the liveness route into the provided API.
//
// The handler never touches a dependency: a 200 only means the process is
// up and serving, which is what orchestrator liveness probes need.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"Meta"},
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*Output, error) {
	return &Output{Body: HealthResponse{Status: StatusOK}}, nil
}
