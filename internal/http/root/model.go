package root

// WelcomeMessage is the fixed greeting returned by the root endpoint.
const WelcomeMessage = "Welcome to Logcraft AI API"

// RootResponse is the root endpoint payload. The name is also its schema
// name in the OpenAPI registry, so it must stay unique across routes.
type RootResponse struct {
	Message string `json:"message" doc:"Welcome message" example:"Welcome to Logcraft AI API"`
}

// Output is the Huma response wrapper for the root endpoint.
type Output struct {
	Body RootResponse
}
