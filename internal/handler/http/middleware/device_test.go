package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/device"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/devicekey"
)

type fakeDeviceRepo struct {
	devices  map[string]device.Device
	lastSeen map[string]time.Time
}

func newFakeDeviceRepo(devices ...device.Device) *fakeDeviceRepo {
	repo := &fakeDeviceRepo{
		devices:  make(map[string]device.Device),
		lastSeen: make(map[string]time.Time),
	}
	for _, d := range devices {
		repo.devices[d.ID] = d
	}
	return repo
}

func (r *fakeDeviceRepo) GetByID(_ context.Context, id string) (device.Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return device.Device{}, device.ErrDeviceNotFound
	}
	return d, nil
}

func (r *fakeDeviceRepo) TouchLastSeen(_ context.Context, id string, at time.Time) error {
	r.lastSeen[id] = at
	return nil
}

func registeredDevice(t *testing.T, id, secret string, active bool) device.Device {
	t.Helper()
	hash, err := devicekey.Hash(secret)
	require.NoError(t, err)
	return device.Device{ID: id, Name: "lobby terminal", KeyHash: hash, Active: active}
}

func TestDeviceAuth_ValidKey(t *testing.T) {
	repo := newFakeDeviceRepo(registeredDevice(t, "term-1", "s3cret", true))

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = DeviceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	req.Header.Set("X-Device-Key", "term-1:s3cret")
	rec := httptest.NewRecorder()

	DeviceAuth(repo)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "term-1", gotID)
	assert.False(t, repo.lastSeen["term-1"].IsZero())
}

func TestDeviceAuth_Rejections(t *testing.T) {
	repo := newFakeDeviceRepo(
		registeredDevice(t, "term-1", "s3cret", true),
		registeredDevice(t, "term-2", "other", false),
	)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "term-1", http.StatusUnauthorized},
		{"empty secret", "term-1:", http.StatusUnauthorized},
		{"unknown device", "ghost:s3cret", http.StatusUnauthorized},
		{"wrong secret", "term-1:wrong", http.StatusUnauthorized},
		{"inactive device", "term-2:other", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodPost, "/events", nil)
			if tt.header != "" {
				req.Header.Set("X-Device-Key", tt.header)
			}
			rec := httptest.NewRecorder()

			DeviceAuth(repo)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, called)
		})
	}
}
