package openai

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the model used when none is configured
	DefaultModel = "gpt-4o-mini"

	RoleSystem = "system"
	RoleUser   = "user"
)
