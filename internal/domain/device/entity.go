package device

import "time"

// Device is a registered recognition terminal. Terminals authenticate ingest
// requests with an ID plus a secret key; only the bcrypt hash of the key is
// stored.
type Device struct {
	ID        string
	Name      string
	Location  *string
	KeyHash   string
	Active    bool
	CreatedAt time.Time
	LastSeen  *time.Time
}
