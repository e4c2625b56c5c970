package hello

// CreateInput is the request body for creating a greeting. The name becomes
// the value of the "Hello" key in the response, so it carries the same
// length bounds as the configured root greeting.
type CreateInput struct {
	Body struct {
		Name string `json:"name" doc:"Name to greet back" example:"DevOps Learner" minLength:"1" maxLength:"100"`
	}
}
