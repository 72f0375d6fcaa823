package router

import "egy-discovery/internal/agent"

// Rule maps a keyword group to an identity.
type Rule struct {
	Keywords []string
	Identity agent.Identity
}

// Decision is the routing result for one request.
type Decision struct {
	Identity agent.Identity
	Source   string // override, keyword or default
	Keyword  string // matched keyword when Source is keyword
}
