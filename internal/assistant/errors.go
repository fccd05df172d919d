package assistant

// The three failure kinds an operation can report. Validation messages are
// shown to the user verbatim; service and parse failures share one generic
// user-visible message, with the underlying cause kept for logging only.

// ValidationError reports an unmet precondition. No remote call was made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ServiceError reports a failed remote invocation. The cause is never
// surfaced to the end user.
type ServiceError struct {
	Msg   string
	Cause error
}

func (e *ServiceError) Error() string { return e.Msg }

func (e *ServiceError) Unwrap() error { return e.Cause }

// ParseError reports a schema-requested response that was not valid JSON or
// was missing required fields. Callers outside this package treat it like a
// ServiceError; tests distinguish it with errors.As.
type ParseError struct {
	Msg   string
	Cause error
}

func (e *ParseError) Error() string { return e.Msg }

func (e *ParseError) Unwrap() error { return e.Cause }

// serviceFailureMsg is the single user-visible message for any remote
// failure, structured or not.
const serviceFailureMsg = "The AI service failed to respond. Please check your connection or API key."
