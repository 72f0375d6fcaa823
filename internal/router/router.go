package router

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"egy-discovery/internal/agent"
)

// Classify picks the identity for prompt. A truthy params["agent"] is returned verbatim,
// without checking that a handler exists for it.
func (r *KeywordRouter) Classify(ctx context.Context, prompt string, params agent.Params) Decision {
	if id, ok := override(params); ok {
		r.l.Debugf(ctx, "%s: override agent=%s", LogPrefixClassify, id)
		return Decision{Identity: id, Source: SourceOverride}
	}

	low := strings.ToLower(prompt)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(low, kw) {
				r.l.Debugf(ctx, "%s: keyword=%q agent=%s", LogPrefixClassify, kw, rule.Identity)
				return Decision{Identity: rule.Identity, Source: SourceKeyword, Keyword: kw}
			}
		}
	}

	return Decision{Identity: agent.Default, Source: SourceDefault}
}

func override(params agent.Params) (agent.Identity, bool) {
	v, ok := params[ParamAgent]
	if !ok || !truthy(v) {
		return "", false
	}
	if s, ok := v.(string); ok {
		return agent.Identity(s), true
	}
	return agent.Identity(fmt.Sprint(v)), true
}

// truthy treats nil, false, zero numbers and empty strings or collections as absent.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}
