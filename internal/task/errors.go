package task

import "errors"

// Failure codes surfaced at the service boundary. Each pipeline invocation
// terminates with exactly one of these or a Task, never both.
const (
	CodeMissingInput        = "missing_input"
	CodeInvalidLLM          = "invalid_llm"
	CodeLLMUnavailable      = "llm_unavailable"
	CodeLLMTimeout          = "llm_timeout"
	CodeLLMEmptyResponse    = "llm_empty_response"
	CodeLLMBadResponse      = "llm_bad_response"
	CodeLLMInvalidStructure = "llm_invalid_structure"
	CodeNotATask            = "not_a_task"
	CodeMissingDueDate      = "missing_due_date"
	CodePastDueDate         = "past_due_date"
	CodeUnknownError        = "unknown_error"
	CodeInternalError       = "internal_error"
)

// Error is a classified, terminal failure. It is constructed at the point
// of detection and propagated unchanged to the boundary.
type Error struct {
	Code    string
	Message string

	// LLMError carries the provider's original error text, when the
	// failure came from an error declaration in the reply.
	LLMError string

	// OriginalText and TaskJSON are carried for audit logging only.
	OriginalText string
	TaskJSON     string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a classified failure.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// AsError classifies an arbitrary error into *Error. Anything not already
// classified surfaces as internal_error rather than leaking detail.
func AsError(err error) *Error {
	var taskErr *Error
	if errors.As(err, &taskErr) {
		return taskErr
	}
	return NewError(CodeInternalError, "Internal server error")
}

// HTTPStatus translates a failure code 1:1 into an HTTP status for the
// boundary layer. Semantic rejections are 422; upstream failures map to
// gateway statuses.
func HTTPStatus(code string) int {
	switch code {
	case CodeMissingInput, CodeInvalidLLM:
		return 400
	case CodeNotATask, CodeMissingDueDate, CodePastDueDate, CodeUnknownError:
		return 422
	case CodeLLMEmptyResponse, CodeLLMBadResponse, CodeLLMInvalidStructure:
		return 502
	case CodeLLMUnavailable:
		return 503
	case CodeLLMTimeout:
		return 504
	default:
		return 500
	}
}
