package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/devops-learner/sample-app/internal/middleware"
)

// Status models the health check payload.
type Status struct {
	Status string `json:"status" doc:"Health status" example:"healthy"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Status
}

// Register wires the health check route into the provided API router.
// The route has no dependencies to probe; a served response means healthy.
func Register(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*Output, error) {
		appmiddleware.LogInfo(ctx, "health check")
		return &Output{Body: Status{Status: "healthy"}}, nil
	})
}
