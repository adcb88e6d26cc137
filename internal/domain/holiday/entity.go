package holiday

import "time"

// Holiday is one externally designated non-working date. A holiday always
// wins over the shifted-weekday computation in the calendar classifier.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
