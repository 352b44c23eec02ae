package model

// Task is the structured reminder produced from free-form user text.
// Immutable once built; returned to the caller, never stored.
type Task struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Meta        TaskMeta `json:"meta"`
}

// TaskMeta records which provider and model produced the task.
type TaskMeta struct {
	LLMProvider string `json:"llm_provider"`
	ModelUsed   string `json:"model_used"`
}
