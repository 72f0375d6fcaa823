package extractor

import "context"

// IExtractor fetches a page and pulls out its readable content.
// Failures are reported through Result.Status, never as an error.
type IExtractor interface {
	Extract(ctx context.Context, url string) Result
}
