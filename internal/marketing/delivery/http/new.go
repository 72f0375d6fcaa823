package http

import (
	"egy-discovery/internal/marketing"
	"egy-discovery/pkg/log"
)

type handler struct {
	l  log.Logger
	uc marketing.UseCase
}

// New creates a new HTTP handler for the marketing domain.
func New(l log.Logger, uc marketing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
