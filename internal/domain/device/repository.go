package device

import (
	"context"
	"time"
)

// DeviceRepository stores registered recognition terminals.
type DeviceRepository interface {
	// GetByID returns one device or ErrDeviceNotFound.
	GetByID(ctx context.Context, id string) (Device, error)

	// TouchLastSeen records the last successful ingest from the device.
	TouchLastSeen(ctx context.Context, id string, at time.Time) error
}
