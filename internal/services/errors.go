package services

// ValidationError reports a request that failed required-field checks.
// Handlers surface it as a client error (HTTP 400) with the raw message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
