package http

import "egy-discovery/internal/workflow"

// --- Request DTOs ---

type webhookReq struct {
	WebhookURL string            `json:"webhook_url"`
	Method     string            `json:"method"`
	Headers    map[string]string `json:"headers"`
	Body       map[string]any    `json:"body"`
}

func (r webhookReq) toInput() workflow.ExecuteWebhookInput {
	return workflow.ExecuteWebhookInput{
		Method:  r.Method,
		URL:     r.WebhookURL,
		Headers: r.Headers,
		Body:    r.Body,
	}
}

type workflowReq struct {
	WorkflowID string         `json:"-"` // populated from URI param
	BaseURL    string         `json:"base_url"`
	APIKey     string         `json:"api_key"`
	Payload    map[string]any `json:"payload"`
}

func (r workflowReq) toInput() workflow.ExecuteWorkflowInput {
	return workflow.ExecuteWorkflowInput{
		WorkflowID: r.WorkflowID,
		BaseURL:    r.BaseURL,
		APIKey:     r.APIKey,
		Payload:    r.Payload,
	}
}

// --- Response DTOs ---

type outcomeResp struct {
	Success    bool `json:"success"`
	StatusCode int  `json:"status_code"`
	Body       any  `json:"body"`
}

func (h *handler) newOutcomeResp(o workflow.Outcome) outcomeResp {
	return outcomeResp{
		Success:    o.Success,
		StatusCode: o.StatusCode,
		Body:       o.Body,
	}
}
