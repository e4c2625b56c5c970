package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/devops-learner/sample-app/internal/common"
	"github.com/devops-learner/sample-app/internal/http/health"
	"github.com/devops-learner/sample-app/internal/http/hello"
	"github.com/devops-learner/sample-app/internal/http/root"
	"github.com/devops-learner/sample-app/internal/http/version"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, greeting, buildVersion string, startedAt common.Time) {
	root.Register(api, greeting)
	health.Register(api)
	hello.Register(api)
	version.Register(api, buildVersion, startedAt)
}
