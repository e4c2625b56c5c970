package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/devops-learner/sample-app/internal/middleware"
)

// Register wires the greeting creation route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-hello",
		Method:        http.MethodPost,
		Path:          "/hello",
		Summary:       "Create a personalized greeting",
		DefaultStatus: http.StatusCreated,
	}, createHandler)
}

func createHandler(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	appmiddleware.LogInfo(ctx, "hello post", zap.String("name", input.Body.Name))
	return &CreateOutput{Body: Greeting{Hello: input.Body.Name}}, nil
}
