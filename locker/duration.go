package locker

import "github.com/krazyTry/liqlock-go/locker/cp_amm"

// Duration is a lock duration class in months. Only 3, 6 and 12 are valid;
// month arithmetic uses 30-day months.
type Duration uint8

const (
	Duration3Months  Duration = 3
	Duration6Months  Duration = 6
	Duration12Months Duration = 12
)

const secondsPerMonth = 30 * 24 * 3600

// vestingPeriods splits a vesting schedule into quarters of the lock term.
const vestingPeriods = 4

// ParseDuration validates a raw month count as a duration class.
func ParseDuration(months uint8) (Duration, error) {
	switch Duration(months) {
	case Duration3Months, Duration6Months, Duration12Months:
		return Duration(months), nil
	}
	return 0, ErrInvalidDuration
}

// Seconds returns the lock term in seconds.
func (d Duration) Seconds() uint64 {
	return uint64(d) * secondsPerMonth
}

// VestingParameters builds the engine vesting schedule for the class: a
// cliff at the full term, released over four equal periods, with no
// liquidity bound to the schedule itself.
func (d Duration) VestingParameters() *cp_amm.VestingParameters {
	cliff := d.Seconds()
	return &cp_amm.VestingParameters{
		CliffPoint:      &cliff,
		PeriodFrequency: cliff / vestingPeriods,
		NumberOfPeriod:  vestingPeriods,
	}
}
