package version

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/devops-learner/sample-app/internal/common"
)

// Info models the version payload.
type Info struct {
	Version   string      `json:"version" doc:"Build version" example:"1.2.3"`
	StartedAt common.Time `json:"startedAt" doc:"Process start time, RFC 3339 UTC"`
}

// Output is the response wrapper for the version endpoint.
type Output struct {
	Body Info
}

// Register wires the version route into the provided API router.
func Register(api huma.API, version string, startedAt common.Time) {
	huma.Get(api, "/version", func(ctx context.Context, _ *struct{}) (*Output, error) {
		return &Output{Body: Info{Version: version, StartedAt: startedAt}}, nil
	})
}
