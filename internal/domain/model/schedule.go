package model

import "time"

// ContributionDate returns the calendar date of the m-th contribution
// (m is zero-based). Under BEGINNING_OF_MONTH the schedule is the first day
// of each successive month starting at the start date's month; under
// END_OF_MONTH it is the last day of each successive month. Month advancement
// uses calendar arithmetic so months of differing lengths never drift.
func (p SimulationParameters) ContributionDate(m int) time.Time {
	year, month, _ := p.startDate.Date()
	if p.timing == TimingEndOfMonth {
		// Day zero of the following month normalizes to this month's last day.
		return time.Date(year, month+time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, month+time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

// WithdrawalDate returns the calendar date of a withdrawal at month t
// (1-based): the first contribution's date advanced t-1 months under the
// same timing policy.
func (p SimulationParameters) WithdrawalDate(t int) time.Time {
	return p.ContributionDate(t - 1)
}
