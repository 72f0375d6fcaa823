package n8n

import "context"

// IN8N executes n8n webhooks and workflows. Failures are reported in the Response.
type IN8N interface {
	ExecuteWebhook(ctx context.Context, req WebhookRequest) Response
	ExecuteWorkflow(ctx context.Context, req WorkflowRequest) Response
}
