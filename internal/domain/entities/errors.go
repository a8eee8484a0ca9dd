package entities

import "errors"

// Domain errors
var (
	ErrSummaryNotFound = errors.New("summary not found")
)
