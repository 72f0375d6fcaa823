package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client implements IN8N interface
type Client struct {
	client *http.Client
}

// New creates a new n8n client
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// ExecuteWebhook sends req.Body as JSON to req.URL.
func (c *Client) ExecuteWebhook(ctx context.Context, req WebhookRequest) Response {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodPost
	}
	return c.do(ctx, method, req.URL, req.Headers, req.Body)
}

// ExecuteWorkflow posts req.Payload to the workflow execute endpoint.
func (c *Client) ExecuteWorkflow(ctx context.Context, req WorkflowRequest) Response {
	url := fmt.Sprintf(WorkflowPathFormat, strings.TrimRight(req.BaseURL, "/"), req.WorkflowID)

	var headers map[string]string
	if req.APIKey != "" {
		headers = map[string]string{HeaderAPIKey: req.APIKey}
	}
	return c.do(ctx, http.MethodPost, url, headers, req.Payload)
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, payload map[string]any) Response {
	if payload == nil {
		payload = map[string]any{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ErrorResponse(KindTransport, fmt.Sprintf("failed to marshal body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return ErrorResponse(KindTransport, fmt.Sprintf("failed to create request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return ErrorResponse(KindTransport, fmt.Sprintf("failed to send request: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrorResponse(KindTransport, fmt.Sprintf("failed to read response: %v", err))
	}

	return Response{
		Success:    resp.StatusCode < http.StatusBadRequest,
		StatusCode: resp.StatusCode,
		Body:       decodeBody(resp.Header.Get("Content-Type"), raw),
	}
}

// decodeBody parses JSON bodies and falls back to the raw text.
func decodeBody(contentType string, raw []byte) any {
	if strings.HasPrefix(contentType, "application/json") {
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
	}
	return string(raw)
}
