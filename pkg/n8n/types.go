package n8n

import "time"

const (
	DefaultTimeout = 30 * time.Second

	WorkflowPathFormat = "%s/api/v1/workflows/%s/execute"
	HeaderAPIKey       = "X-N8N-API-Key"

	KindTransport     = "transport"
	KindConfiguration = "configuration"
)

// Config holds the client settings.
type Config struct {
	Timeout time.Duration
}

// WebhookRequest calls an arbitrary webhook URL.
type WebhookRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    map[string]any
}

// WorkflowRequest executes a workflow through the n8n REST API.
type WorkflowRequest struct {
	BaseURL    string
	WorkflowID string
	APIKey     string
	Payload    map[string]any
}

// Response is the normalized outcome of a call.
// StatusCode 0 means the request never reached the remote endpoint.
type Response struct {
	Success    bool `json:"success"`
	StatusCode int  `json:"status_code"`
	Body       any  `json:"body"`
}

// ErrorResponse builds a Response for a call that never reached the remote endpoint.
func ErrorResponse(kind, message string) Response {
	return Response{
		Success:    false,
		StatusCode: 0,
		Body: map[string]any{
			"error": message,
			"kind":  kind,
		},
	}
}
