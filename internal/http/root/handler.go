package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/logcraft/logcraft-api/internal/platform/logging"
)

// Register wires the root route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Description: "Returns a fixed greeting identifying the Logcraft AI API.",
		Tags:        []string{"Meta"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogDebug(ctx, "root get", zap.String("path", "/"))
	return &Output{Body: RootResponse{Message: WelcomeMessage}}, nil
}
