package augmenter

import "time"

// Status is the tag of an Outcome.
type Status string

const (
	StatusEnhanced    Status = "enhanced"
	StatusUnavailable Status = "unavailable"
	StatusFailed      Status = "failed"
)

// Outcome is the result of one augmentation attempt.
// Text is set only for StatusEnhanced, Reason only for the other two.
type Outcome struct {
	Status Status
	Text   string
	Reason string
}

// Enhanced reports whether the outcome carries generated text.
func (o Outcome) Enhanced() bool {
	return o.Status == StatusEnhanced
}

// Directive is one generation request: a system role plus user content.
// MaxTokens and Temperature are the handler's preference, bounded by Config.
type Directive struct {
	SystemRole  string
	UserContent string
	MaxTokens   int
	Temperature float64
}

// Config holds the generation settings read at startup.
// MaxTokens and Temperature are upper limits for every Directive.
type Config struct {
	Enabled     bool
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func enhanced(text string) Outcome {
	return Outcome{Status: StatusEnhanced, Text: text}
}

func unavailable(reason string) Outcome {
	return Outcome{Status: StatusUnavailable, Reason: reason}
}

func failed(reason string) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason}
}
