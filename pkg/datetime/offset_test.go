package datetime

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"

	"github.com/mailru/chrono/pkg/duration"
)

func TestOffsetFromHMS(t *testing.T) {
	type args struct {
		hours   int8
		minutes int8
		seconds int8
	}

	tests := []struct {
		name        string
		args        args
		wantSeconds int32
		wantErr     bool
	}{
		{name: "utc", args: args{0, 0, 0}, wantSeconds: 0},
		{name: "positive", args: args{5, 30, 0}, wantSeconds: 19_800},
		{name: "negative", args: args{-5, -30, 0}, wantSeconds: -19_800},
		{name: "max", args: args{23, 59, 59}, wantSeconds: 86_399},
		{name: "min", args: args{-23, -59, -59}, wantSeconds: -86_399},
		{name: "hours overflow", args: args{24, 0, 0}, wantErr: true},
		{name: "minutes overflow", args: args{0, 60, 0}, wantErr: true},
		{name: "seconds overflow", args: args{0, 0, 60}, wantErr: true},
		{name: "mixed signs", args: args{5, -30, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OffsetFromHMS(tt.args.hours, tt.args.minutes, tt.args.seconds)
			if tt.wantErr {
				assert.Check(t, errors.Is(err, ErrComponentRange))
				return
			}

			assert.NilError(t, err)
			assert.Equal(t, got.WholeSeconds(), tt.wantSeconds)
		})
	}
}

func TestOffsetFromWholeSeconds(t *testing.T) {
	o, err := OffsetFromWholeSeconds(-19_800)
	assert.NilError(t, err)
	assert.Equal(t, o.WholeHours(), int8(-5))
	assert.Equal(t, o.MinutesPastHour(), int8(-30))
	assert.Equal(t, o.SecondsPastMinute(), int8(0))
	assert.Equal(t, o.WholeMinutes(), int16(-330))

	_, err = OffsetFromWholeSeconds(86_400)
	assert.Check(t, errors.Is(err, ErrComponentRange))

	_, err = OffsetFromWholeSeconds(-86_400)
	assert.Check(t, errors.Is(err, ErrComponentRange))
}

func TestOffsetQueries(t *testing.T) {
	east, err := OffsetFromHMS(3, 0, 0)
	assert.NilError(t, err)
	west := east.Neg()

	assert.Check(t, UTC.IsUTC())
	assert.Check(t, !UTC.IsPositive())
	assert.Check(t, !UTC.IsNegative())

	assert.Check(t, east.IsPositive())
	assert.Check(t, west.IsNegative())
	assert.Equal(t, west.WholeSeconds(), int32(-10_800))
	assert.Equal(t, west.Neg(), east)
}

func TestOffsetAsDuration(t *testing.T) {
	o, err := OffsetFromHMS(-5, -30, 0)
	assert.NilError(t, err)

	assert.Equal(t, o.AsDuration(), duration.Seconds(-19_800))
	assert.Equal(t, UTC.AsDuration(), duration.Zero)
}
