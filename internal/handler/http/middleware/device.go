package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/device"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/response"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/devicekey"
)

type deviceContextKey struct{}

// DeviceIDFromContext returns the authenticated terminal's ID, set by
// DeviceAuth.
func DeviceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(deviceContextKey{}).(string)
	return id, ok
}

// DeviceAuth authenticates recognition terminals. Terminals send
// "X-Device-Key: <device_id>:<secret>"; the secret is checked against the
// stored bcrypt hash.
func DeviceAuth(devices device.DeviceRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-Device-Key")
			if header == "" {
				response.HandleError(w, device.ErrMissingDeviceID)
				return
			}

			deviceID, secret, found := strings.Cut(header, ":")
			if !found || deviceID == "" || secret == "" {
				response.HandleError(w, device.ErrMissingDeviceID)
				return
			}

			d, err := devices.GetByID(r.Context(), deviceID)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !d.Active {
				response.HandleError(w, device.ErrDeviceInactive)
				return
			}
			if !devicekey.Verify(d.KeyHash, secret) {
				response.HandleError(w, device.ErrInvalidKey)
				return
			}

			// Last-seen is bookkeeping; a failed update must not reject the
			// event.
			if err := devices.TouchLastSeen(r.Context(), d.ID, time.Now().UTC()); err != nil {
				slog.Warn("failed to update device last seen", "device_id", d.ID, "error", err)
			}

			ctx := context.WithValue(r.Context(), deviceContextKey{}, d.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
