package actions

import "github.com/diewo77/invoice-dashboard/internal/validation"

// State is the form state handed back to the client after a failed
// submission: per-field messages plus a top-level message.
type State struct {
	Errors  validation.Violations `json:"errors,omitempty"`
	Message string                `json:"message,omitempty"`
}

// Outcome is the explicit result of a mutation. Exactly one shape holds:
// a redirect path on success, a State on validation or storage failure,
// or neither for mutations that succeed in place (delete). Navigation is
// plain data here, never a panic or an error for callers to intercept.
type Outcome struct {
	// RedirectTo is the path the client should navigate to on success.
	RedirectTo string
	// State carries field errors and/or a user-facing message; nil on success.
	State *State
	// Err holds the underlying storage error when State.Message reports one,
	// so callers that need the structured cause still have it.
	Err error
}

// OK reports whether the mutation succeeded.
func (o Outcome) OK() bool { return o.State == nil }

func redirect(path string) Outcome { return Outcome{RedirectTo: path} }

func invalid(v validation.Violations, message string) Outcome {
	return Outcome{State: &State{Errors: v, Message: message}}
}

func failed(message string, err error) Outcome {
	return Outcome{State: &State{Message: message}, Err: err}
}
