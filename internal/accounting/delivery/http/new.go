package http

import (
	"egy-discovery/internal/accounting"
	"egy-discovery/pkg/log"
)

type handler struct {
	l  log.Logger
	uc accounting.UseCase
}

// New creates a new HTTP handler for the accounting domain.
func New(l log.Logger, uc accounting.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
