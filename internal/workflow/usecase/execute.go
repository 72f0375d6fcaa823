package usecase

import (
	"context"

	"egy-discovery/internal/workflow"
	"egy-discovery/pkg/metrics"
	"egy-discovery/pkg/n8n"
)

const (
	kindWebhook  = "webhook"
	kindWorkflow = "workflow"
)

// ExecuteWebhook calls input.URL, or the configured webhook URL when empty.
func (uc *implUseCase) ExecuteWebhook(ctx context.Context, input workflow.ExecuteWebhookInput) workflow.Outcome {
	if !uc.cfg.Enabled {
		return uc.configError(ctx, kindWebhook, workflow.ErrWorkflowsDisabled)
	}

	url := input.URL
	if url == "" {
		url = uc.cfg.WebhookURL
	}
	if url == "" {
		return uc.configError(ctx, kindWebhook, workflow.ErrMissingWebhookURL)
	}

	resp := uc.client.ExecuteWebhook(ctx, n8n.WebhookRequest{
		Method:  input.Method,
		URL:     url,
		Headers: input.Headers,
		Body:    input.Body,
	})
	return uc.finish(ctx, kindWebhook, resp)
}

// ExecuteWorkflow runs a workflow through the n8n REST API. Request values win over configuration.
func (uc *implUseCase) ExecuteWorkflow(ctx context.Context, input workflow.ExecuteWorkflowInput) workflow.Outcome {
	if !uc.cfg.Enabled {
		return uc.configError(ctx, kindWorkflow, workflow.ErrWorkflowsDisabled)
	}
	if input.WorkflowID == "" {
		return uc.configError(ctx, kindWorkflow, workflow.ErrMissingWorkflowID)
	}

	apiKey := firstNonEmpty(input.APIKey, uc.cfg.APIKey)
	if apiKey == "" {
		return uc.configError(ctx, kindWorkflow, workflow.ErrMissingAPIKey)
	}
	baseURL := firstNonEmpty(input.BaseURL, uc.cfg.BaseURL)
	if baseURL == "" {
		return uc.configError(ctx, kindWorkflow, workflow.ErrMissingBaseURL)
	}

	resp := uc.client.ExecuteWorkflow(ctx, n8n.WorkflowRequest{
		BaseURL:    baseURL,
		WorkflowID: input.WorkflowID,
		APIKey:     apiKey,
		Payload:    input.Payload,
	})
	return uc.finish(ctx, kindWorkflow, resp)
}

func (uc *implUseCase) configError(ctx context.Context, kind string, err error) workflow.Outcome {
	uc.l.Warnf(ctx, "internal.workflow.usecase.%s: %v", kind, err)
	metrics.RecordWorkflowDispatch(kind, false)
	return toOutcome(n8n.ErrorResponse(workflow.KindConfiguration, err.Error()))
}

func (uc *implUseCase) finish(ctx context.Context, kind string, resp n8n.Response) workflow.Outcome {
	metrics.RecordWorkflowDispatch(kind, resp.Success)
	if !resp.Success {
		uc.l.Warnf(ctx, "internal.workflow.usecase.%s: status=%d", kind, resp.StatusCode)
	} else {
		uc.l.Infof(ctx, "internal.workflow.usecase.%s: status=%d", kind, resp.StatusCode)
	}
	return toOutcome(resp)
}

func toOutcome(resp n8n.Response) workflow.Outcome {
	return workflow.Outcome{
		Success:    resp.Success,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
