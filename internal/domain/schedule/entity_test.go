package schedule

import "testing"

func TestShiftDurationMinutes(t *testing.T) {
	cases := []struct {
		name  string
		start int
		end   int
		want  int
	}{
		{"day shift", 540, 1020, 480},       // 09:00-17:00
		{"overnight", 1320, 360, 480},       // 22:00-06:00
		{"ends at midnight", 960, 0, 480},   // 16:00-00:00
		{"starts at midnight", 0, 480, 480}, // 00:00-08:00
		{"one minute", 100, 101, 1},
		{"zero length collapses", 540, 540, 0},
	}
	for _, c := range cases {
		s := Shift{StartMinute: c.start, EndMinute: c.end}
		if got := s.DurationMinutes(); got != c.want {
			t.Errorf("%s: DurationMinutes() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestShiftIsOvernight(t *testing.T) {
	if (Shift{StartMinute: 540, EndMinute: 1020}).IsOvernight() {
		t.Error("09:00-17:00 should not be overnight")
	}
	if !(Shift{StartMinute: 1320, EndMinute: 360}).IsOvernight() {
		t.Error("22:00-06:00 should be overnight")
	}
	if !(Shift{StartMinute: 960, EndMinute: 0}).IsOvernight() {
		t.Error("16:00-00:00 wraps to minute zero and counts as overnight")
	}
}

func TestShiftContains(t *testing.T) {
	day := Shift{StartMinute: 540, EndMinute: 1020} // 09:00-17:00
	cases := []struct {
		minute int
		want   bool
	}{
		{540, true},   // start inclusive
		{1019, true},  // last covered minute
		{1020, false}, // end exclusive
		{539, false},  // one before start
		{1200, false}, // evening
	}
	for _, c := range cases {
		if got := day.Contains(c.minute); got != c.want {
			t.Errorf("day.Contains(%d) = %v, want %v", c.minute, got, c.want)
		}
	}

	night := Shift{StartMinute: 1320, EndMinute: 360} // 22:00-06:00
	nightCases := []struct {
		minute int
		want   bool
	}{
		{1320, true}, // start
		{0, true},    // midnight
		{359, true},  // last covered minute
		{360, false}, // end exclusive
		{720, false}, // noon
	}
	for _, c := range nightCases {
		if got := night.Contains(c.minute); got != c.want {
			t.Errorf("night.Contains(%d) = %v, want %v", c.minute, got, c.want)
		}
	}
}
