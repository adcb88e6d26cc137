package policy

// PenaltyTier is one half-open band of cumulative monthly lateness minutes.
// A tier applies to [FromMinutes, nextTier.FromMinutes); the last tier is
// open-ended.
type PenaltyTier struct {
	FromMinutes int
	Amount      int64
}

// PenaltyTable is the ordered tier list. The evaluator is the algorithm; the
// boundaries and amounts are deployment configuration.
type PenaltyTable []PenaltyTier

// Amount returns the penalty for the month's cumulative lateness minutes:
// the amount of the highest tier whose lower bound is not above lateMinutes.
func (t PenaltyTable) Amount(lateMinutes int) int64 {
	if lateMinutes < 0 {
		lateMinutes = 0
	}
	var amount int64
	for _, tier := range t {
		if lateMinutes < tier.FromMinutes {
			break
		}
		amount = tier.Amount
	}
	return amount
}

// Validate enforces the table shape: non-empty, a free band starting at zero,
// strictly ascending bounds, and amounts that never decrease so more lateness
// cannot yield a smaller penalty.
func (t PenaltyTable) Validate() error {
	if len(t) == 0 {
		return ErrEmptyPenaltyTable
	}
	if t[0].FromMinutes != 0 {
		return ErrPenaltyTableGap
	}
	for i, tier := range t {
		if tier.Amount < 0 {
			return ErrNegativePenaltyAmount
		}
		if i == 0 {
			continue
		}
		if tier.FromMinutes <= t[i-1].FromMinutes {
			return ErrPenaltyTiersNotAscending
		}
		if tier.Amount < t[i-1].Amount {
			return ErrPenaltyNotMonotonic
		}
	}
	return nil
}
