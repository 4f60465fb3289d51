package tools

import "fmt"

// ArgumentError reports a missing or mistyped argument.
type ArgumentError struct {
	Key    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' %s", e.Key, e.Reason)
}

// missingArgument builds the ArgumentError for an absent required key.
func missingArgument(key string) *ArgumentError {
	return &ArgumentError{Key: key, Reason: "is required"}
}

// wrongType builds the ArgumentError for a value of the wrong JSON type.
func wrongType(key, want string) *ArgumentError {
	return &ArgumentError{Key: key, Reason: "must be " + want}
}

// ActionError wraps a failure of the underlying action. Action is the
// capitalized verb phrase used in the rendered message, e.g. "Navigation".
type ActionError struct {
	Action string
	Err    error
}

// NewActionError wraps err as an ActionError for action.
func NewActionError(action string, err error) *ActionError {
	return &ActionError{Action: action, Err: err}
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
