package api

// Error is the single uniform failure kind surfaced by the wrapper. Callers
// never need to distinguish transport failures from application-level ones;
// both carry only a human-readable message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// genericMessage is used when a non-success response carries no error field.
const genericMessage = "API request failed"
