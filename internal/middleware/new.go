package middleware

import (
	"egy-discovery/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
