package http

import (
	"egy-discovery/internal/workflow"
	"egy-discovery/pkg/log"
)

type handler struct {
	l  log.Logger
	uc workflow.UseCase
}

// New creates a new HTTP handler for the automation endpoints.
func New(l log.Logger, uc workflow.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
