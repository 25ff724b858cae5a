package liturgy

import "time"

// Sunday lectionary years, indexed by liturgical year mod 3
var sundayCycles = [3]string{"A", "B", "C"}

// Weekday lectionary years
const (
	WeekdayCycleI  = "1"
	WeekdayCycleII = "2"
)

// Cycles holds the lectionary cycles in force on a date.
type Cycles struct {
	Sunday  string // A, B or C
	Weekday string // 1 or 2
}

// FirstSundayOfAdvent returns the Sunday on or before December 3rd, which
// always falls between November 27 and December 3.
func FirstSundayOfAdvent(year int) time.Time {
	dec3 := time.Date(year, time.December, 3, 0, 0, 0, 0, time.UTC)
	// time.Weekday counts Sunday as 0, i.e. ISO weekday mod 7
	return dec3.AddDate(0, 0, -int(dec3.Weekday()))
}

// LiturgicalYear returns the calendar year in which the liturgical year
// containing date began. Dates before the first Sunday of Advent belong to
// the previous year's cycle.
func LiturgicalYear(date time.Time) int {
	year := date.Year()
	day := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(FirstSundayOfAdvent(year)) {
		return year - 1
	}
	return year
}

// SundayCycle returns the Sunday lectionary year for date.
func SundayCycle(date time.Time) string {
	return sundayCycles[mod(LiturgicalYear(date), 3)]
}

// WeekdayCycle returns "1" for odd calendar years and "2" for even ones.
// Unlike the Sunday cycle it follows the calendar year, not Advent.
func WeekdayCycle(date time.Time) string {
	if date.Year()%2 != 0 {
		return WeekdayCycleI
	}
	return WeekdayCycleII
}

// CyclesFor returns both cycles for date.
func CyclesFor(date time.Time) Cycles {
	return Cycles{
		Sunday:  SundayCycle(date),
		Weekday: WeekdayCycle(date),
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
