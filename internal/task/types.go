package task

// ProcessInput is the input for one text-to-task conversion.
type ProcessInput struct {
	UserText string // Natural language task description from the user
	Provider string // Selected LLM provider id ("groq" or "openai")

	// PromptTemplate is the stored system prompt, loaded by the boundary
	// and passed in per call. The pipeline only substitutes its
	// reference-date placeholder, never mutates the stored template.
	PromptTemplate string

	// UserTimestamp is an optional 10-digit unix-seconds string anchoring
	// the model's relative-date reasoning. When empty, now is used. It is
	// only rendered into the prompt, never used for due-date validation.
	UserTimestamp string

	// TransactionID correlates audit-log events for this request.
	TransactionID string
}
