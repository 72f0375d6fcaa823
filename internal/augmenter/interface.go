package augmenter

import "context"

// Augmenter produces optional generated text for a handler.
// It never returns an error: failures are carried by the Outcome.
type Augmenter interface {
	Augment(ctx context.Context, d Directive) Outcome
}
