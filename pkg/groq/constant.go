package groq

const (
	// DefaultModel is the default Groq chat model
	DefaultModel = "llama3-8b-8192"

	// DefaultBaseURL is the Groq OpenAI-compatible chat-completions endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"

	// DefaultTemperature keeps structured extraction output deterministic
	DefaultTemperature = 0.1

	// DefaultMaxTokens bounds the structured reply size
	DefaultMaxTokens = 200
)
