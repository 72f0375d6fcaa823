package augmenter

import "time"

const (
	LogPrefixAugment = "internal.augmenter.Augment"

	DefaultTimeout   = 30 * time.Second
	DefaultMaxTokens = 500

	ReasonDisabled     = "AI features disabled"
	ReasonMissingKey   = "OPENAI_API_KEY not configured"
	ReasonNoClient     = "generation client not initialized"
	ReasonEmptyContent = "empty completion"
)
