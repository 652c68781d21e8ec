package service

import (
	"berries/internal/domain/constant"
	"testing"
	"time"
)

func TestNextOccurrence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		period constant.Period
		from   time.Time
		want   time.Time
	}{
		{name: "daily", period: constant.PeriodDaily, from: time.Date(2024, 2, 28, 7, 30, 0, 0, time.UTC), want: time.Date(2024, 2, 29, 7, 30, 0, 0, time.UTC)},
		{name: "daily year end", period: constant.PeriodDaily, from: time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), want: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)},
		{name: "weekly", period: constant.PeriodWeekly, from: time.Date(2024, 3, 28, 8, 0, 0, 0, time.UTC), want: time.Date(2024, 4, 4, 8, 0, 0, 0, time.UTC)},
		{name: "monthly", period: constant.PeriodMonthly, from: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), want: time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)},
		{name: "monthly clamps leap february", period: constant.PeriodMonthly, from: time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC), want: time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)},
		{name: "monthly clamps february", period: constant.PeriodMonthly, from: time.Date(2023, 1, 31, 8, 0, 0, 0, time.UTC), want: time.Date(2023, 2, 28, 8, 0, 0, 0, time.UTC)},
		{name: "monthly clamps thirty day month", period: constant.PeriodMonthly, from: time.Date(2024, 5, 31, 8, 0, 0, 0, time.UTC), want: time.Date(2024, 6, 30, 8, 0, 0, 0, time.UTC)},
		{name: "monthly december", period: constant.PeriodMonthly, from: time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), want: time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NextOccurrence(tt.period, tt.from)
			if !got.Equal(tt.want) {
				t.Fatalf("NextOccurrence(%s, %v) = %v, want %v", tt.period, tt.from, got, tt.want)
			}
			if !got.After(tt.from) {
				t.Fatalf("NextOccurrence(%s, %v) = %v is not after from", tt.period, tt.from, got)
			}
		})
	}
}

func TestNextOccurrenceTwiceIsAdditiveForDaysAndWeeks(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, 1, 31, 6, 15, 0, 0, time.UTC)

	if got, want := NextOccurrence(constant.PeriodDaily, NextOccurrence(constant.PeriodDaily, from)), from.AddDate(0, 0, 2); !got.Equal(want) {
		t.Fatalf("daily twice = %v, want %v", got, want)
	}
	if got, want := NextOccurrence(constant.PeriodWeekly, NextOccurrence(constant.PeriodWeekly, from)), from.AddDate(0, 0, 14); !got.Equal(want) {
		t.Fatalf("weekly twice = %v, want %v", got, want)
	}

	// Jan 31 -> Feb 29 -> Mar 29, while two months at once would be Mar 31.
	twice := NextOccurrence(constant.PeriodMonthly, NextOccurrence(constant.PeriodMonthly, from))
	if want := time.Date(2024, 3, 29, 6, 15, 0, 0, time.UTC); !twice.Equal(want) {
		t.Fatalf("monthly twice = %v, want %v", twice, want)
	}
	if doubled := addMonths(from, 2); twice.Equal(doubled) {
		t.Fatalf("monthly twice unexpectedly equals two months at once (%v)", doubled)
	}
}

func TestNextOccurrencePanicsOnUnknownPeriod(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unknown period")
		}
	}()
	NextOccurrence(constant.Period("hourly"), time.Now())
}

func TestReanchorKeepsTimeOfDay(t *testing.T) {
	t.Parallel()
	scheduled := time.Date(2024, 3, 1, 8, 30, 15, 0, time.UTC)
	now := time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC)

	got := reanchor(scheduled, now)
	if want := time.Date(2024, 3, 4, 8, 30, 15, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("reanchor = %v, want %v", got, want)
	}

	// now is seen in the zone of the scheduled time.
	zurich := time.FixedZone("CET", 3600)
	scheduled = time.Date(2024, 3, 1, 0, 30, 0, 0, zurich)
	now = time.Date(2024, 3, 4, 23, 45, 0, 0, time.UTC) // already Mar 5 in CET
	got = reanchor(scheduled, now)
	if want := time.Date(2024, 3, 5, 0, 30, 0, 0, zurich); !got.Equal(want) {
		t.Fatalf("reanchor across zones = %v, want %v", got, want)
	}
}

func TestReanchorKeepsUTCTimeOfDayAcrossDaylightSaving(t *testing.T) {
	t.Parallel()
	// 09:00 in Berlin winter time, as read back from the store.
	scheduled := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
	now := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	got := reanchor(scheduled, now)
	if want := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("reanchor = %v, want %v", got, want)
	}
	// After the switch to summer time the same instant is 10:00 local.
	if h := got.In(time.FixedZone("CEST", 2*3600)).Hour(); h != 10 {
		t.Fatalf("local hour = %d, want 10", h)
	}
}
