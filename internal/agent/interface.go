package agent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
