package workhours

import "errors"

// Work hours domain errors
var (
	ErrRecordNotFound   = errors.New("work hours record not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
