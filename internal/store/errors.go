package store

// Op identifies which storage operation failed.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpList   Op = "list"
)

// Error wraps a database failure with the operation that produced it.
// The cause stays reachable through errors.Unwrap; message formatting
// for users happens at the action boundary, not here.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return "invoice " + string(e.Op) + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
