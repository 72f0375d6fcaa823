package workflow

import "errors"

const KindConfiguration = "configuration"

var (
	ErrWorkflowsDisabled = errors.New("n8n workflows are disabled")
	ErrMissingAPIKey     = errors.New("N8N_API_KEY not configured")
	ErrMissingBaseURL    = errors.New("N8N_BASE_URL not configured")
	ErrMissingWebhookURL = errors.New("webhook URL not provided and N8N_WEBHOOK_URL not configured")
	ErrMissingWorkflowID = errors.New("workflow id is required")
)
