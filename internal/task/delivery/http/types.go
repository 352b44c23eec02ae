package http

// parseTaskReq is the request body for task parsing.
type parseTaskReq struct {
	Text          string `json:"text"`
	LLM           string `json:"llm"`
	UserTimestamp string `json:"userTimestamp"`
}

// defaultProvider is used when the caller does not select one.
const defaultProvider = "groq"
