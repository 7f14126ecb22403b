package datetime

import (
	"github.com/gobwas/pool/pbytes"
	"github.com/pkg/errors"

	"github.com/mailru/chrono/pkg/primint"
)

// appendPadded appends v in decimal, zero-padded to the given width.
func appendPadded(b []byte, v int, width int) []byte {
	var tmp [10]byte
	i := len(tmp)

	for v > 0 || i > len(tmp)-width {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}

	return append(b, tmp[i:]...)
}

// AppendFormat appends the date as [-]YYYY-MM-DD.
func (d Date) AppendFormat(b []byte) []byte {
	year := int(d.year)
	if year < 0 {
		b = append(b, '-')
		year = -year
	}

	month, day := d.MonthDay()

	b = appendPadded(b, year, 4)
	b = append(b, '-')
	b = appendPadded(b, int(month), 2)
	b = append(b, '-')

	return appendPadded(b, int(day), 2)
}

func (d Date) String() string {
	buf := pbytes.GetCap(16)
	defer pbytes.Put(buf)

	return string(d.AppendFormat(buf))
}

// AppendFormat appends the time as HH:MM:SS, with the nanosecond
// fraction attached when present.
func (t Time) AppendFormat(b []byte) []byte {
	b = appendPadded(b, int(t.hour), 2)
	b = append(b, ':')
	b = appendPadded(b, int(t.minute), 2)
	b = append(b, ':')
	b = appendPadded(b, int(t.second), 2)

	if t.nsec != 0 {
		b = append(b, '.')
		b = appendPadded(b, int(t.nsec), 9)

		for b[len(b)-1] == '0' {
			b = b[:len(b)-1]
		}
	}

	return b
}

func (t Time) String() string {
	buf := pbytes.GetCap(24)
	defer pbytes.Put(buf)

	return string(t.AppendFormat(buf))
}

// AppendFormat appends the instant as the date, a space, and the time.
func (dt DateTime) AppendFormat(b []byte) []byte {
	b = dt.date.AppendFormat(b)
	b = append(b, ' ')

	return dt.time.AppendFormat(b)
}

func (dt DateTime) String() string {
	buf := pbytes.GetCap(40)
	defer pbytes.Put(buf)

	return string(dt.AppendFormat(buf))
}

// AppendFormat appends the offset as ±HH:MM:SS.
func (o UtcOffset) AppendFormat(b []byte) []byte {
	sign := byte('+')
	h, m, s := int(o.hours), int(o.minutes), int(o.seconds)

	if o.IsNegative() {
		sign = '-'
		h, m, s = -h, -m, -s
	}

	b = append(b, sign)
	b = appendPadded(b, h, 2)
	b = append(b, ':')
	b = appendPadded(b, m, 2)
	b = append(b, ':')

	return appendPadded(b, s, 2)
}

func (o UtcOffset) String() string {
	buf := pbytes.GetCap(16)
	defer pbytes.Put(buf)

	return string(o.AppendFormat(buf))
}

// parseDigits reads exactly n ASCII digits.
func parseDigits(s string, n int) (int, bool) {
	if len(s) < n {
		return 0, false
	}

	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		v = v*10 + int(c-'0')
	}

	return v, true
}

// ParseDate parses [-]YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, errors.Wrapf(ErrInvalidFormat, "date %q", s)
	}

	year, ok1 := parseDigits(s, 4)
	month, ok2 := parseDigits(s[5:], 2)
	day, ok3 := parseDigits(s[8:], 2)

	if !ok1 || !ok2 || !ok3 {
		return Date{}, errors.Wrapf(ErrInvalidFormat, "date %q", s)
	}

	if neg {
		year = -year
	}

	return FromCalendarDate(int32(year), Month(month), uint8(day))
}

// ParseTime parses HH:MM:SS with an optional fractional second of up
// to nine digits.
func ParseTime(s string) (Time, error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return Time{}, errors.Wrapf(ErrInvalidFormat, "time %q", s)
	}

	hour, ok1 := parseDigits(s, 2)
	minute, ok2 := parseDigits(s[3:], 2)
	second, ok3 := parseDigits(s[6:], 2)

	if !ok1 || !ok2 || !ok3 {
		return Time{}, errors.Wrapf(ErrInvalidFormat, "time %q", s)
	}

	nsec := 0

	if rest := s[8:]; len(rest) > 0 {
		if rest[0] != '.' || len(rest) == 1 || len(rest) > 10 {
			return Time{}, errors.Wrapf(ErrInvalidFormat, "time %q", s)
		}

		frac, ok := parseDigits(rest[1:], len(rest)-1)
		if !ok {
			return Time{}, errors.Wrapf(ErrInvalidFormat, "time %q", s)
		}

		// Scale the parsed digits up to nanoseconds.
		nsec = frac * int(primint.Pow(int32(10), uint32(10-len(rest))))
	}

	return FromHMSNano(uint8(hour), uint8(minute), uint8(second), uint32(nsec))
}

// ParseDateTime parses the date and time separated by a space or 'T'.
func ParseDateTime(s string) (DateTime, error) {
	if len(s) < 11 || (s[10] != ' ' && s[10] != 'T') {
		if len(s) > 0 && s[0] == '-' && len(s) >= 12 && (s[11] == ' ' || s[11] == 'T') {
			date, err := ParseDate(s[:11])
			if err != nil {
				return DateTime{}, err
			}

			tm, err := ParseTime(s[12:])
			if err != nil {
				return DateTime{}, err
			}

			return DateTime{date: date, time: tm}, nil
		}

		return DateTime{}, errors.Wrapf(ErrInvalidFormat, "datetime %q", s)
	}

	date, err := ParseDate(s[:10])
	if err != nil {
		return DateTime{}, err
	}

	tm, err := ParseTime(s[11:])
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{date: date, time: tm}, nil
}
