package router

import "egy-discovery/internal/agent"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// ParamAgent is the params key that overrides keyword routing.
const ParamAgent = "agent"

// Decision sources
const (
	SourceOverride = "override"
	SourceKeyword  = "keyword"
	SourceDefault  = "default"
)

// DefaultRules is the keyword cascade in priority order. The first rule with a keyword
// contained in the lower-cased prompt wins.
var DefaultRules = []Rule{
	{Keywords: []string{"lead", "buyer", "prospect"}, Identity: agent.LeadGen},
	{Keywords: []string{"research", "scan", "find", "market"}, Identity: agent.Research},
	{Keywords: []string{"scrape", "url", "http"}, Identity: agent.Scrape},
	{Keywords: []string{"enrich", "score"}, Identity: agent.Enrich},
	{Keywords: []string{"account", "invoice", "transaction"}, Identity: agent.Accounting},
	{Keywords: []string{"campaign", "ads", "meta", "google ads"}, Identity: agent.Marketing},
}
