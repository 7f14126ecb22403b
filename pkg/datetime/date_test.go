package datetime

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"

	"github.com/mailru/chrono/pkg/duration"
)

func mustDate(t *testing.T, year int32, month Month, day uint8) Date {
	t.Helper()

	d, err := FromCalendarDate(year, month, day)
	assert.NilError(t, err)

	return d
}

func TestFromCalendarDate(t *testing.T) {
	type args struct {
		year  int32
		month Month
		day   uint8
	}

	tests := []struct {
		name        string
		args        args
		wantOrdinal uint16
		wantErr     bool
	}{
		{name: "first of year", args: args{2019, January, 1}, wantOrdinal: 1},
		{name: "last of year", args: args{2019, December, 31}, wantOrdinal: 365},
		{name: "leap last of year", args: args{2020, December, 31}, wantOrdinal: 366},
		{name: "leap day", args: args{2020, February, 29}, wantOrdinal: 60},
		{name: "march after leap day", args: args{2020, March, 1}, wantOrdinal: 61},
		{name: "century non leap", args: args{1900, February, 29}, wantErr: true},
		{name: "quadricentennial leap", args: args{2000, February, 29}, wantOrdinal: 60},
		{name: "zero day", args: args{2019, January, 0}, wantErr: true},
		{name: "month overflow", args: args{2019, Month(13), 1}, wantErr: true},
		{name: "day overflow", args: args{2019, April, 31}, wantErr: true},
		{name: "year too small", args: args{-10_000, January, 1}, wantErr: true},
		{name: "year too large", args: args{10_000, January, 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromCalendarDate(tt.args.year, tt.args.month, tt.args.day)
			if tt.wantErr {
				assert.Check(t, errors.Is(err, ErrComponentRange))
				return
			}

			assert.NilError(t, err)
			assert.Equal(t, got.Ordinal(), tt.wantOrdinal)
			assert.Equal(t, got.Year(), tt.args.year)
		})
	}
}

func TestFromOrdinalDate(t *testing.T) {
	d, err := FromOrdinalDate(2020, 366)
	assert.NilError(t, err)
	assert.Equal(t, d, mustDate(t, 2020, December, 31))

	_, err = FromOrdinalDate(2019, 366)
	assert.Check(t, errors.Is(err, ErrComponentRange))

	_, err = FromOrdinalDate(2019, 0)
	assert.Check(t, errors.Is(err, ErrComponentRange))
}

func TestJulianDayRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want int32
	}{
		{name: "julian epoch", date: mustDate(t, -4713, November, 24), want: 0},
		{name: "unix epoch", date: mustDate(t, 1970, January, 1), want: 2_440_588},
		{name: "y2k", date: mustDate(t, 2000, January, 1), want: 2_451_545},
		{name: "common year", date: mustDate(t, 2019, January, 1), want: 2_458_485},
		{name: "min date", date: MinDate, want: MinDate.ToJulianDay()},
		{name: "max date", date: MaxDate, want: MaxDate.ToJulianDay()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.date.ToJulianDay(), tt.want)

			back, err := FromJulianDay(tt.want)
			assert.NilError(t, err)
			assert.Equal(t, back, tt.date)
		})
	}
}

func TestFromJulianDayRange(t *testing.T) {
	_, err := FromJulianDay(MaxDate.ToJulianDay() + 1)
	assert.Check(t, errors.Is(err, ErrComponentRange))

	_, err = FromJulianDay(MinDate.ToJulianDay() - 1)
	assert.Check(t, errors.Is(err, ErrComponentRange))
}

func TestMonthDay(t *testing.T) {
	for year := int32(2019); year <= 2020; year++ {
		d, err := FromOrdinalDate(year, 1)
		assert.NilError(t, err)

		for {
			month, day := d.MonthDay()

			back, err := FromCalendarDate(year, month, day)
			assert.NilError(t, err)
			assert.Equal(t, back, d)

			next, ok := d.NextDay()
			if !ok || next.Year() != year {
				break
			}

			d = next
		}
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Weekday
	}{
		{name: "unix epoch", date: mustDate(t, 1970, January, 1), want: Thursday},
		{name: "y2k", date: mustDate(t, 2000, January, 1), want: Saturday},
		{name: "leap day", date: mustDate(t, 2024, February, 29), want: Thursday},
		{name: "before common era", date: mustDate(t, -44, March, 15), want: Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.date.Weekday(), tt.want)
		})
	}
}

func TestWeekdaySequence(t *testing.T) {
	d := mustDate(t, 2019, December, 28)
	want := d.Weekday()

	for i := 0; i < 14; i++ {
		assert.Equal(t, d.Weekday(), want, "day %v", d)

		var ok bool
		d, ok = d.NextDay()
		assert.Assert(t, ok)

		want++
		if want > Sunday {
			want = Monday
		}
	}
}

func TestNextPreviousDay(t *testing.T) {
	d, ok := mustDate(t, 2019, December, 31).NextDay()
	assert.Assert(t, ok)
	assert.Equal(t, d, mustDate(t, 2020, January, 1))

	d, ok = d.PreviousDay()
	assert.Assert(t, ok)
	assert.Equal(t, d, mustDate(t, 2019, December, 31))

	_, ok = MaxDate.NextDay()
	assert.Assert(t, !ok)

	_, ok = MinDate.PreviousDay()
	assert.Assert(t, !ok)
}

func TestDateCheckedAdd(t *testing.T) {
	tests := []struct {
		name string
		date Date
		dur  duration.Duration
		want Date
		ok   bool
	}{
		{name: "one day", date: mustDate(t, 2019, February, 28), dur: duration.Days(1), want: mustDate(t, 2019, March, 1), ok: true},
		{name: "leap one day", date: mustDate(t, 2020, February, 28), dur: duration.Days(1), want: mustDate(t, 2020, February, 29), ok: true},
		{name: "sub day ignored", date: mustDate(t, 2019, June, 1), dur: duration.Hours(23), want: mustDate(t, 2019, June, 1), ok: true},
		{name: "backwards across year", date: mustDate(t, 2020, January, 1), dur: duration.Days(-1), want: mustDate(t, 2019, December, 31), ok: true},
		{name: "week", date: mustDate(t, 2019, June, 1), dur: duration.Weeks(1), want: mustDate(t, 2019, June, 8), ok: true},
		{name: "past max", date: MaxDate, dur: duration.Days(1), ok: false},
		{name: "past min", date: MinDate, dur: duration.Days(-1), ok: false},
		{name: "huge", date: mustDate(t, 2019, June, 1), dur: duration.Max, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.date.CheckedAdd(tt.dur)
			assert.Equal(t, ok, tt.ok)

			if tt.ok {
				assert.Equal(t, got, tt.want)
			}
		})
	}
}

func TestDateCheckedSub(t *testing.T) {
	got, ok := mustDate(t, 2020, March, 1).CheckedSub(duration.Days(1))
	assert.Assert(t, ok)
	assert.Equal(t, got, mustDate(t, 2020, February, 29))

	_, ok = MinDate.CheckedSub(duration.Days(1))
	assert.Assert(t, !ok)
}

func TestDateSaturating(t *testing.T) {
	assert.Equal(t, MaxDate.SaturatingAdd(duration.Days(1)), MaxDate)
	assert.Equal(t, MinDate.SaturatingAdd(duration.Days(-1)), MinDate)
	assert.Equal(t, MinDate.SaturatingSub(duration.Days(1)), MinDate)
	assert.Equal(t, MaxDate.SaturatingSub(duration.Days(-1)), MaxDate)

	got := mustDate(t, 2019, June, 1).SaturatingAdd(duration.Days(30))
	assert.Equal(t, got, mustDate(t, 2019, July, 1))
}

func TestDateCmp(t *testing.T) {
	a := mustDate(t, 2019, June, 1)
	b := mustDate(t, 2019, June, 2)
	c := mustDate(t, 2020, January, 1)

	assert.Equal(t, a.Cmp(b), -1)
	assert.Equal(t, b.Cmp(a), 1)
	assert.Equal(t, a.Cmp(a), 0)
	assert.Equal(t, b.Cmp(c), -1)
}

func TestMonthWeekdayStrings(t *testing.T) {
	assert.Equal(t, January.String(), "January")
	assert.Equal(t, December.String(), "December")
	assert.Equal(t, Monday.String(), "Monday")
	assert.Equal(t, Sunday.String(), "Sunday")
	assert.Equal(t, Month(0).String(), "Month(?)")
	assert.Equal(t, Weekday(8).String(), "Weekday(?)")
}

func TestSentinelUnwrap(t *testing.T) {
	_, err := FromCalendarDate(2019, February, 30)
	assert.Assert(t, errors.Cause(err) == ErrComponentRange)
}
