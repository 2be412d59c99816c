package hotel

import (
	"testing"
	"time"
)

func TestNightsBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"one night", day(10), day(11), 1},
		{"week", day(1), day(8), 7},
		{"month boundary", time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC), day(2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nightsBetween(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("nightsBetween(%s, %s) = %d, want %d",
					tt.checkIn.Format("2006-01-02"), tt.checkOut.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
