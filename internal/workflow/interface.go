package workflow

import "context"

// UseCase dispatches automation calls. Failures are carried in the Outcome.
//
//go:generate mockery --name UseCase
type UseCase interface {
	ExecuteWebhook(ctx context.Context, input ExecuteWebhookInput) Outcome
	ExecuteWorkflow(ctx context.Context, input ExecuteWorkflowInput) Outcome
}
