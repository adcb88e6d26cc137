package policy

import "errors"

// Policy configuration errors. All of these are setup defects and abort
// pipeline construction before any record is derived.
var (
	ErrInvalidShiftWindow       = errors.New("shift end must be after shift start within one day")
	ErrNegativeGracePeriod      = errors.New("grace period must not be negative")
	ErrNegativeBreak            = errors.New("break minutes must not be negative")
	ErrInvalidRegularHoursCap   = errors.New("regular hours cap must be positive")
	ErrInvalidWeekendShift      = errors.New("weekend shift days must be between 0 and 6")
	ErrEmptyPenaltyTable        = errors.New("penalty table must not be empty")
	ErrPenaltyTableGap          = errors.New("penalty table must start with a tier at 0 minutes")
	ErrPenaltyTiersNotAscending = errors.New("penalty tier bounds must be strictly ascending")
	ErrPenaltyNotMonotonic      = errors.New("penalty amounts must not decrease across tiers")
	ErrNegativePenaltyAmount    = errors.New("penalty amount must not be negative")
)
