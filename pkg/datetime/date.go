// Package datetime provides calendar dates, wall-clock times and their
// composition on the proleptic Gregorian calendar, with arithmetic in
// terms of duration.Duration.
package datetime

import (
	stderrors "errors"
	"math"

	"github.com/pkg/errors"

	"github.com/mailru/chrono/pkg/duration"
)

// Sentinel errors for construction and parsing.
var (
	ErrComponentRange = stderrors.New("component out of range")
	ErrInvalidFormat  = stderrors.New("invalid format")
)

// Supported year span.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Month of the year, January being 1.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(?)"
	}

	return monthNames[m-1]
}

// Weekday with Monday as 1, matching ISO-8601 numbering.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(?)"
	}

	return weekdayNames[w-1]
}

// Date is a calendar date stored as a year and the ordinal day within
// that year. Values are comparable with ==.
type Date struct {
	year    int32
	ordinal uint16
}

var (
	MinDate = Date{year: MinYear, ordinal: 1}
	MaxDate = Date{year: MaxYear, ordinal: daysInYear(MaxYear)}
)

// Cumulative day counts at the start of each month, common and leap.
var daysCumulative = [2][12]uint16{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

func isLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int32) uint16 {
	if isLeapYear(year) {
		return 366
	}

	return 365
}

func daysInMonth(year int32, month Month) uint8 {
	switch month {
	case February:
		if isLeapYear(year) {
			return 29
		}

		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// floorDiv is division rounding toward negative infinity, for the
// calendar math below where truncation misbehaves on negative years.
func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// FromCalendarDate builds a Date from a year, month and day of month.
func FromCalendarDate(year int32, month Month, day uint8) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Wrapf(ErrComponentRange, "year %d not in [%d, %d]", year, MinYear, MaxYear)
	}

	if month < January || month > December {
		return Date{}, errors.Wrapf(ErrComponentRange, "month %d not in [1, 12]", int(month))
	}

	if day == 0 || day > daysInMonth(year, month) {
		return Date{}, errors.Wrapf(ErrComponentRange, "day %d not in [1, %d]", day, daysInMonth(year, month))
	}

	leap := 0
	if isLeapYear(year) {
		leap = 1
	}

	return Date{
		year:    year,
		ordinal: daysCumulative[leap][month-1] + uint16(day),
	}, nil
}

// FromOrdinalDate builds a Date from a year and the day number within
// it, 1 through 365 or 366.
func FromOrdinalDate(year int32, ordinal uint16) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Wrapf(ErrComponentRange, "year %d not in [%d, %d]", year, MinYear, MaxYear)
	}

	if ordinal == 0 || ordinal > daysInYear(year) {
		return Date{}, errors.Wrapf(ErrComponentRange, "ordinal %d not in [1, %d]", ordinal, daysInYear(year))
	}

	return Date{year: year, ordinal: ordinal}, nil
}

// FromJulianDay builds the Date with the given Julian day number.
func FromJulianDay(julianDay int32) (Date, error) {
	if julianDay < MinDate.ToJulianDay() || julianDay > MaxDate.ToJulianDay() {
		return Date{}, errors.Wrapf(ErrComponentRange, "julian day %d not in [%d, %d]",
			julianDay, MinDate.ToJulianDay(), MaxDate.ToJulianDay())
	}

	return fromJulianDay(julianDay), nil
}

// fromJulianDay converts without range checking. The algorithm derives
// the year from cycle counts of the 400-year Gregorian period, then
// realigns the March-based ordinal to January.
func fromJulianDay(julianDay int32) Date {
	z := julianDay - 1_721_119
	g := 100*z - 25
	a := g / 3_652_425
	b := a - a/4
	year := floorDiv(100*b+g, 36525)
	ordinal := b + z - floorDiv(36525*year, 100)

	if isLeapYear(year) {
		ordinal += 60

		if ordinal >= 367 {
			ordinal -= 366
			year++
		}
	} else {
		ordinal += 59

		if ordinal >= 366 {
			ordinal -= 365
			year++
		}
	}

	return Date{year: year, ordinal: uint16(ordinal)}
}

// ToJulianDay returns the Julian day number of the date.
func (d Date) ToJulianDay() int32 {
	year := d.year - 1

	return int32(d.ordinal) + 365*year + floorDiv(year, 4) - floorDiv(year, 100) +
		floorDiv(year, 400) + 1_721_425
}

func (d Date) Year() int32     { return d.year }
func (d Date) Ordinal() uint16 { return d.ordinal }

// MonthDay splits the ordinal into a month and day of month.
func (d Date) MonthDay() (Month, uint8) {
	leap := 0
	if isLeapYear(d.year) {
		leap = 1
	}

	days := daysCumulative[leap]

	for m := December; m > January; m-- {
		if d.ordinal > days[m-1] {
			return m, uint8(d.ordinal - days[m-1])
		}
	}

	return January, uint8(d.ordinal)
}

func (d Date) Month() Month {
	m, _ := d.MonthDay()
	return m
}

func (d Date) Day() uint8 {
	_, day := d.MonthDay()
	return day
}

// Weekday returns the day of week, derived from the Julian day number
// (Julian day 0 was a Monday).
func (d Date) Weekday() Weekday {
	switch d.ToJulianDay() % 7 {
	case -6, 1:
		return Tuesday
	case -5, 2:
		return Wednesday
	case -4, 3:
		return Thursday
	case -3, 4:
		return Friday
	case -2, 5:
		return Saturday
	case -1, 6:
		return Sunday
	default:
		return Monday
	}
}

// NextDay returns the following date, reporting false at MaxDate.
func (d Date) NextDay() (Date, bool) {
	if d.ordinal >= daysInYear(d.year) {
		if d == MaxDate {
			return Date{}, false
		}

		return Date{year: d.year + 1, ordinal: 1}, true
	}

	return Date{year: d.year, ordinal: d.ordinal + 1}, true
}

// PreviousDay returns the preceding date, reporting false at MinDate.
func (d Date) PreviousDay() (Date, bool) {
	if d.ordinal > 1 {
		return Date{year: d.year, ordinal: d.ordinal - 1}, true
	}

	if d == MinDate {
		return Date{}, false
	}

	return Date{year: d.year - 1, ordinal: daysInYear(d.year - 1)}, true
}

// CheckedAdd shifts the date by the whole days of dur, reporting false
// when the result leaves the supported year span.
func (d Date) CheckedAdd(dur duration.Duration) (Date, bool) {
	wholeDays := dur.WholeDays()
	if wholeDays < math.MinInt32 || wholeDays > math.MaxInt32 {
		return Date{}, false
	}

	julianDay := int64(d.ToJulianDay()) + wholeDays
	if julianDay < int64(MinDate.ToJulianDay()) || julianDay > int64(MaxDate.ToJulianDay()) {
		return Date{}, false
	}

	return fromJulianDay(int32(julianDay)), true
}

// CheckedSub shifts the date backwards by the whole days of dur.
func (d Date) CheckedSub(dur duration.Duration) (Date, bool) {
	return d.CheckedAdd(dur.Neg())
}

// SaturatingAdd is CheckedAdd clamping to MinDate or MaxDate.
func (d Date) SaturatingAdd(dur duration.Duration) Date {
	if v, ok := d.CheckedAdd(dur); ok {
		return v
	}

	if dur.IsNegative() {
		return MinDate
	}

	return MaxDate
}

// SaturatingSub is CheckedSub clamping to MinDate or MaxDate.
func (d Date) SaturatingSub(dur duration.Duration) Date {
	if v, ok := d.CheckedSub(dur); ok {
		return v
	}

	if dur.IsNegative() {
		return MaxDate
	}

	return MinDate
}

// Cmp compares two dates chronologically.
func (d Date) Cmp(rhs Date) int {
	switch {
	case d.year < rhs.year:
		return -1
	case d.year > rhs.year:
		return 1
	case d.ordinal < rhs.ordinal:
		return -1
	case d.ordinal > rhs.ordinal:
		return 1
	}

	return 0
}

// Midnight pairs the date with the start of day.
func (d Date) Midnight() DateTime {
	return DateTime{date: d}
}

// WithTime pairs the date with a wall-clock time.
func (d Date) WithTime(t Time) DateTime {
	return DateTime{date: d, time: t}
}
