package analysis

const (
	DefaultTags = "analysis,plan"
	ListLimit   = 200

	MaxROASPoints = 60
	MaxCTRPoints  = 40
)
