package agent

import "context"

// Identity names one task handler.
type Identity string

const (
	LeadGen    Identity = "leadgen"
	Research   Identity = "research"
	Scrape     Identity = "scrape"
	Enrich     Identity = "enrich"
	Accounting Identity = "accounting"
	Marketing  Identity = "marketing"
	Default    Identity = "default"
)

// Identities lists every known identity in routing priority order, default last.
var Identities = []Identity{LeadGen, Research, Scrape, Enrich, Accounting, Marketing, Default}

// Params carries free-form request parameters (agent override, url, topic, payload, tx, ...).
type Params map[string]any

// Result is the plain-data output of a handler.
type Result map[string]any

// Handler runs one kind of task. It never fails: problems are reported inside the Result.
type Handler interface {
	Identity() Identity
	Handle(ctx context.Context, prompt string, params Params) Result
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc struct {
	ID Identity
	Fn func(ctx context.Context, prompt string, params Params) Result
}

func (f HandlerFunc) Identity() Identity { return f.ID }

func (f HandlerFunc) Handle(ctx context.Context, prompt string, params Params) Result {
	return f.Fn(ctx, prompt, params)
}

// Registry maps identities to handlers.
type Registry struct {
	handlers map[Identity]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[Identity]Handler),
	}
}

// Register adds h, replacing any handler with the same identity.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Identity()] = h
}

// Get retrieves a handler by identity.
func (r *Registry) Get(id Identity) (Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}

// Resolve returns the handler for id, falling back to the Default handler.
// The second return value is the identity actually served.
func (r *Registry) Resolve(id Identity) (Handler, Identity) {
	if h, ok := r.Get(id); ok {
		return h, id
	}
	h, _ := r.Get(Default)
	return h, Default
}

// --- UseCase Inputs ---

type RouteInput struct {
	Prompt string
	Params Params
}

type ClassifyInput struct {
	Prompt string
	Params Params
}

// --- UseCase Outputs ---

type RouteOutput struct {
	Agent  Identity
	Result Result
}

type ClassifyOutput struct {
	Agent   Identity
	Source  string
	Keyword string
}
