package usecase

import (
	"regexp"

	"egy-discovery/internal/agent"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

func (uc *implUseCase) timestamp() string {
	return uc.now().Format("2006-01-02T15:04:05.000000")
}

// stringParam returns params[key] when it is a non-empty string.
func stringParam(params map[string]any, key string) string {
	if s, ok := params[key].(string); ok {
		return s
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func mapParam(params agent.Params, key string) map[string]any {
	if m, ok := params[key].(map[string]any); ok && len(m) > 0 {
		return m
	}
	return nil
}
