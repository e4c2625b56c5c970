package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/devops-learner/sample-app/internal/middleware"
)

// Register wires the root route into the provided API router.
func Register(api huma.API, greeting string) {
	huma.Register(api, huma.Operation{
		OperationID: "read-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Read the root greeting",
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		appmiddleware.LogInfo(ctx, "root get", zap.String("path", "/"))
		return &Output{Body: Greeting{Hello: greeting}}, nil
	})
}
