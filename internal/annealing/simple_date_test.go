package annealing

import "testing"

func TestSimpleDateFromTime(t *testing.T) {
	cases := []struct {
		t    uint8
		day  uint8
		hour uint8
	}{
		{0, 0, 8},
		{1, 0, 10},
		{5, 0, 18},
		{6, 1, 8},
		{11, 1, 18},
	}

	for _, c := range cases {
		got := SimpleDateFromTime(c.t)
		if got.Day != c.day || got.Hour != c.hour {
			t.Errorf("SimpleDateFromTime(%d) = %+v, want {%d %d}", c.t, got, c.day, c.hour)
		}
	}
}

func TestNewSimpleDatePanicsOnOddHour(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for an odd hour")
		}
	}()
	NewSimpleDate(0, 9)
}

func TestNewSimpleDatePanicsPastEleven(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for hour >= 23")
		}
	}()
	NewSimpleDate(0, 24)
}

func TestMaxTime(t *testing.T) {
	if got := MaxTime(3); got != 18 {
		t.Fatalf("MaxTime(3) = %d, want 18", got)
	}
}

func TestDayNameCyclesWeekly(t *testing.T) {
	cases := []struct {
		day  uint8
		want string
	}{
		{0, "Monday"},
		{6, "Sunday"},
		{7, "Monday"},
		{13, "Sunday"},
	}

	for _, c := range cases {
		d := SimpleDate{Day: c.day}
		if got := d.DayName(); got != c.want {
			t.Errorf("DayName() for day %d = %q, want %q", c.day, got, c.want)
		}
	}
}
