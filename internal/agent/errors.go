package agent

import "errors"

var (
	ErrNoDefaultHandler = errors.New("no default handler registered")
)
