package timelog

import "errors"

// Timelog domain errors
var (
	ErrEventNotFound    = errors.New("time log event not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is not active")
	ErrDuplicateEvent   = errors.New("an identical event already exists")
)
