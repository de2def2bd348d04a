package pipeline

// ValidationKind classifies query validation failures. These are caller
// errors: resubmitting a corrected query can succeed.
type ValidationKind string

const (
	ValidationTooShort     ValidationKind = "too_short"
	ValidationTooLong      ValidationKind = "too_long"
	ValidationIDGeneration ValidationKind = "id_generation"
)

// ValidationError is returned when a raw query is rejected before any
// processing happens.
type ValidationError struct {
	Kind    ValidationKind
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// ProcessingKind classifies failures of the LLM processing stage. These
// are transient from the caller's perspective: the same query may
// succeed on retry.
type ProcessingKind string

const (
	ProcessingLLMCallFailed ProcessingKind = "llm_call_failed"
	ProcessingEmptyResponse ProcessingKind = "empty_response"
)

// ProcessingError is returned when the completion call fails or its
// response is unusable. The underlying cause is kept for diagnostics but
// callers only see the uniform kind and message.
type ProcessingError struct {
	Kind    ProcessingKind
	Message string
	Err     error
}

func (e *ProcessingError) Error() string { return e.Message }

func (e *ProcessingError) Unwrap() error { return e.Err }
