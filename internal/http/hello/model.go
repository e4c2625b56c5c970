package hello

// Greeting models the created greeting, mirroring the root route's shape.
type Greeting struct {
	Hello string `json:"Hello" doc:"Greeting recipient" example:"DevOps Learner"`
}

// CreateOutput is the response wrapper for the POST hello endpoint.
type CreateOutput struct {
	Body Greeting
}
