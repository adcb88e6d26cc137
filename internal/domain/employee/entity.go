package employee

import "time"

// Employee is the read-only view of an employee this service needs. Identity
// and HR attributes are owned by the external HR system; the engine only
// consumes IDs, names, and the active flag.
type Employee struct {
	ID       string
	Code     string
	FullName string
	Position *string
	Active   bool
	JoinedAt time.Time
}
