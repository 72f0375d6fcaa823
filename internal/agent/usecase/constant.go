package usecase

// Log prefixes
const (
	LogPrefixRoute    = "internal.agent.usecase.Route"
	LogPrefixClassify = "internal.agent.usecase.Classify"
	LogPrefixScrape   = "internal.agent.usecase.scrape"
)

// Param keys
const (
	ParamURL       = "url"
	ParamTopic     = "topic"
	ParamPayload   = "payload"
	ParamBio       = "bio"
	ParamExtract   = "extract"
	ParamTx        = "tx"
	ParamName      = "name"
	ParamPlatform  = "platform"
	ParamObjective = "objective"
)

// Fixed baseline values
const (
	LeadName           = "Example Lead"
	LeadPlatform       = "instagram"
	LeadScore          = 0.8
	StrategyName       = "AI Lead Strategy"
	StrategyPlatform   = "multi-platform"
	StrategyScore      = 0.9
	MaxEnrichScore     = 100
	EnhancedScore      = 90
	HighConfidence     = "high"
	TextAnalyzedRunes  = 200
	ScrapeAugmentRunes = 1500

	DefaultCampaignName      = "Auto Campaign"
	DefaultCampaignPlatform  = "meta"
	DefaultCampaignObjective = "LINK_CLICKS"

	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"

	ErrMsgNoURL          = "No URL detected"
	ErrMsgScrapeDisabled = "Web scraping is disabled"
)

// ScoreFactor is one weighted keyword group of the enrich scorer.
type ScoreFactor struct {
	Key      string
	Keywords []string
	Weight   int
}

// DefaultScoreFactors are the enrich weights used when Config.ScoreFactors is empty.
var DefaultScoreFactors = []ScoreFactor{
	{Key: "photography_videography", Keywords: []string{"photography", "videography"}, Weight: 40},
	{Key: "hurghada_mention", Keywords: []string{"hurghada"}, Weight: 30},
	{Key: "booking_inquiry", Keywords: []string{"booking", "inquiry"}, Weight: 20},
	{Key: "contact_email", Keywords: []string{"contact", "email"}, Weight: 10},
}

var defaultTx = map[string]any{
	"type":    "expense",
	"account": "ops",
	"amount":  0,
}
