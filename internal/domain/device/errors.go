package device

import "errors"

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDeviceInactive  = errors.New("device is deactivated")
	ErrInvalidKey      = errors.New("invalid device key")
	ErrMissingDeviceID = errors.New("device credentials missing")
)
