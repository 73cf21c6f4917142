package locker

import "testing"

func TestDurationSeconds(t *testing.T) {
	cases := []struct {
		months  uint8
		seconds uint64
	}{
		{3, 7_776_000},
		{6, 15_552_000},
		{12, 31_104_000},
	}
	for _, tc := range cases {
		d, err := ParseDuration(tc.months)
		if err != nil {
			t.Fatal(err)
		}
		if got := d.Seconds(); got != tc.seconds {
			t.Errorf("%d months: seconds = %d, want %d", tc.months, got, tc.seconds)
		}
	}
}

func TestParseDurationRejectsOtherClasses(t *testing.T) {
	for _, months := range []uint8{0, 1, 2, 4, 9, 24, 255} {
		if _, err := ParseDuration(months); err != ErrInvalidDuration {
			t.Errorf("%d months: err = %v, want ErrInvalidDuration", months, err)
		}
	}
}

func TestVestingParameters(t *testing.T) {
	params := Duration6Months.VestingParameters()

	if params.CliffPoint == nil || *params.CliffPoint != 15_552_000 {
		t.Fatalf("cliff = %v", params.CliffPoint)
	}
	if params.PeriodFrequency != 15_552_000/4 {
		t.Errorf("frequency = %d", params.PeriodFrequency)
	}
	if params.NumberOfPeriod != 4 {
		t.Errorf("periods = %d", params.NumberOfPeriod)
	}
	if params.CliffUnlockLiquidity.BigInt().Sign() != 0 || params.LiquidityPerPeriod.BigInt().Sign() != 0 {
		t.Error("schedule should carry no liquidity")
	}
}
