package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/device"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	db *database.DB
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepository) GetByID(ctx context.Context, id string) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, key_hash, is_active, created_at, last_seen_at
		FROM devices
		WHERE id = $1
	`

	var d device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Location, &d.KeyHash, &d.Active, &d.CreatedAt, &d.LastSeen,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	return d, nil
}

// TouchLastSeen implements device.DeviceRepository.
func (r *deviceRepository) TouchLastSeen(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE devices SET last_seen_at = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("failed to update device last seen: %w", err)
	}

	return nil
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}
