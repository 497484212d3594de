package server

import "fmt"

// UnknownToolError is returned when a tool call names a tool that is not
// registered. Its message is part of the caller-visible contract.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// UnknownPromptError is returned when a prompt request names a prompt that
// is not registered. Unlike tool failures it is not wrapped into a content
// envelope: the prompt protocol has no isError flag, so the request is
// rejected outright.
type UnknownPromptError struct {
	Name string
}

func (e *UnknownPromptError) Error() string {
	return fmt.Sprintf("Unknown prompt: %s", e.Name)
}

// InvalidArgumentError covers missing required arguments and argument
// values outside their typed or enumerated domain. The closed example
// catalog folds its not-found case into this type as well.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func missingArgument(key string) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf("Missing required argument: %s", key)}
}
