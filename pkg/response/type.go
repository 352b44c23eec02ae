package response

// SuccessResp is the envelope for a successfully parsed task.
type SuccessResp struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResp is the envelope for a classified failure.
type ErrorResp struct {
	Success         bool   `json:"success"`
	ErrorCode       string `json:"error_code"`
	Message         string `json:"message"`
	LLMErrorMessage string `json:"llm_error_message,omitempty"`
}
