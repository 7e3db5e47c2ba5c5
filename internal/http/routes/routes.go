package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/logcraft/logcraft-api/internal/http/health"
	"github.com/logcraft/logcraft-api/internal/http/root"
)

// Register wires all application routes into the provided API. It runs once
// during startup; the route table is fixed afterwards.
func Register(api huma.API) {
	root.Register(api)
	health.Register(api)
}
