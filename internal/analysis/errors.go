package analysis

import "errors"

var (
	ErrInvalidMetric = errors.New("roas and ctr must be numbers")
)
