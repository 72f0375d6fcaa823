package http

import "egy-discovery/internal/agent"

// --- Request DTOs ---

type routeReq struct {
	Prompt string         `json:"prompt"`
	Params map[string]any `json:"params"`
}

func (r routeReq) toRouteInput() agent.RouteInput {
	return agent.RouteInput{
		Prompt: r.Prompt,
		Params: agent.Params(r.Params),
	}
}

func (r routeReq) toClassifyInput() agent.ClassifyInput {
	return agent.ClassifyInput{
		Prompt: r.Prompt,
		Params: agent.Params(r.Params),
	}
}

// --- Response DTOs ---

type routeResp struct {
	OK     bool           `json:"ok"`
	Agent  string         `json:"agent"`
	Result map[string]any `json:"result"`
}

type classifyResp struct {
	Agent   string `json:"agent"`
	Source  string `json:"source"`
	Keyword string `json:"keyword,omitempty"`
}

func (h *handler) newRouteResp(o agent.RouteOutput) routeResp {
	return routeResp{
		OK:     true,
		Agent:  string(o.Agent),
		Result: o.Result,
	}
}

func (h *handler) newClassifyResp(o agent.ClassifyOutput) classifyResp {
	return classifyResp{
		Agent:   string(o.Agent),
		Source:  o.Source,
		Keyword: o.Keyword,
	}
}
