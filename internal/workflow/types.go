package workflow

// Config holds the automation settings read at startup.
type Config struct {
	Enabled    bool
	BaseURL    string
	APIKey     string
	WebhookURL string
}

// Outcome is the normalized result of a dispatch.
// StatusCode 0 means the remote endpoint was never reached.
type Outcome struct {
	Success    bool
	StatusCode int
	Body       any
}

// Configuration reports whether the outcome is a fast-fail configuration error.
func (o Outcome) Configuration() bool {
	if o.StatusCode != 0 {
		return false
	}
	body, ok := o.Body.(map[string]any)
	return ok && body["kind"] == KindConfiguration
}

// --- UseCase Inputs ---

type ExecuteWebhookInput struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    map[string]any
}

type ExecuteWorkflowInput struct {
	WorkflowID string
	BaseURL    string
	APIKey     string
	Payload    map[string]any
}
