package constant

// Period defines the repeat interval of a berry.
type Period string

const (
	// PeriodDaily repeats every day at the same time of day.
	PeriodDaily Period = "daily"
	// PeriodWeekly repeats every seven days.
	PeriodWeekly Period = "weekly"
	// PeriodMonthly repeats on the same day of the following calendar month.
	PeriodMonthly Period = "monthly"
)

// Periods lists every valid period.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

func (p Period) String() string {
	return string(p)
}
