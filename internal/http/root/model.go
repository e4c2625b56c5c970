package root

// Greeting models the root payload. The key is capitalized on the wire:
// clients receive {"Hello": "DevOps Learner"}.
type Greeting struct {
	Hello string `json:"Hello" doc:"Greeting recipient" example:"DevOps Learner"`
}

// Output is the response wrapper for the root endpoint.
type Output struct {
	Body Greeting
}
