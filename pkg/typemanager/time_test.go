package typemanager_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plblum/jTAC-sub002/pkg/typemanager"
)

var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func clock(h, m, s int) time.Time {
	return epoch.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}

func TestTimeOfDayToValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     typemanager.Options
		text     string
		expected any
		errCheck func(error) bool
	}{
		{name: "midnight", text: "12:00 AM", expected: clock(0, 0, 0)},
		{name: "noon", text: "12:00 PM", expected: clock(12, 0, 0)},
		{name: "last minute", text: "11:59 PM", expected: clock(23, 59, 0)},
		{name: "lower case designator", text: "2:30 pm", expected: clock(14, 30, 0)},
		{name: "single letter designator", text: "2:30p", expected: clock(14, 30, 0)},
		{name: "24 hour clock", text: "14:30", expected: clock(14, 30, 0)},
		{name: "seconds", text: "2:30:15 PM", expected: clock(14, 30, 15)},
		{name: "designator first", text: "PM 2:30", expected: clock(14, 30, 0)},
		{name: "null", text: "", expected: nil},
		{name: "minutes required", text: "2", errCheck: typemanager.IsInputError},
		{name: "hours only", opts: typemanager.Options{"parseTimeRequires": "h"}, text: "2 PM", expected: clock(14, 0, 0)},
		{name: "seconds required", opts: typemanager.Options{"parseTimeRequires": "hms"}, text: "2:30 PM", errCheck: typemanager.IsInputError},
		{name: "a day or more", text: "24:00", errCheck: typemanager.IsInputError},
		{name: "too many minutes", text: "1:60", errCheck: typemanager.IsInputError},
		{name: "twelve hour range", text: "13:00 PM", errCheck: typemanager.IsInputError},
		{name: "two designators", text: "AM 2:30 PM", errCheck: typemanager.IsInputError},
		{name: "not a time", text: "half past two", errCheck: typemanager.IsConversionError},
		{name: "thirty hours", text: "30:00", errCheck: typemanager.IsInputError},
		{name: "japanese designator", opts: typemanager.Options{"cultureName": "ja-JP"}, text: "午後 2:30", expected: clock(14, 30, 0)},
		{name: "japanese 24 hour", opts: typemanager.Options{"cultureName": "ja-JP"}, text: "14:30", expected: clock(14, 30, 0)},
		{name: "as seconds", opts: typemanager.Options{"valueAsNumber": true}, text: "1:00 AM", expected: 3600.0},
		{name: "as hours", opts: typemanager.Options{"valueAsNumber": true, "timeOneEqualsSeconds": 3600}, text: "1:30", expected: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tm, err := typemanager.NewTimeOfDay(nil, tt.opts)
			require.NoError(t, err)
			v, err := tm.ToValue(tt.text)
			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestTimeOfDayStrict(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"parseStrict": true})
	require.NoError(t, err)

	v, err := tm.ToValue("2:30:00 PM")
	require.NoError(t, err)
	assert.Equal(t, clock(14, 30, 0), v)

	v, err = tm.ToValue("2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, clock(14, 30, 0), v)

	_, err = tm.ToValue("PM 2:30")
	assert.True(t, typemanager.IsConversionError(err))

	gb, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"parseStrict": true, "cultureName": "en-GB"})
	require.NoError(t, err)
	v, err = gb.ToValue("14:30")
	require.NoError(t, err)
	assert.Equal(t, clock(14, 30, 0), v)
}

func TestTimeOfDayToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     typemanager.Options
		value    any
		expected string
	}{
		{name: "midnight", value: clock(0, 0, 0), expected: "12:00:00 AM"},
		{name: "afternoon", value: clock(14, 30, 0), expected: "2:30:00 PM"},
		{name: "short", opts: typemanager.Options{"timeFormat": "Short"}, value: clock(14, 30, 0), expected: "2:30 PM"},
		{name: "zero seconds omitted", opts: typemanager.Options{"timeFormat": "LongOmitZeroSeconds"}, value: clock(9, 5, 0), expected: "9:05 AM"},
		{name: "seconds kept", opts: typemanager.Options{"timeFormat": "LongOmitZeroSeconds"}, value: clock(9, 5, 7), expected: "9:05:07 AM"},
		{name: "british", opts: typemanager.Options{"cultureName": "en-GB", "timeFormat": "LongOmitZeroSeconds"}, value: clock(14, 30, 0), expected: "14:30"},
		{name: "japanese", opts: typemanager.Options{"cultureName": "ja-JP"}, value: clock(9, 5, 0), expected: "9:05:00"},
		{name: "date part ignored", value: time.Date(2021, 6, 1, 14, 30, 0, 0, time.UTC), expected: "2:30:00 PM"},
		{name: "seconds as number", opts: typemanager.Options{"valueAsNumber": true}, value: 3661, expected: "1:01:01 AM"},
		{name: "null", value: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tm, err := typemanager.NewTimeOfDay(nil, tt.opts)
			require.NoError(t, err)
			s, err := tm.ToString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	tm, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"valueAsNumber": true})
	require.NoError(t, err)
	_, err = tm.ToString(90000)
	assert.True(t, typemanager.IsConversionError(err))
	_, err = tm.ToString(-1)
	assert.True(t, typemanager.IsConversionError(err))
}

func TestTimeOfDayNeutral(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"cultureName": "ja-JP", "timeFormat": "Short"})
	require.NoError(t, err)

	s, err := tm.ToStringNeutral(clock(14, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, "14:30:00", s)

	s, err = tm.ToStringNeutral(clock(9, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, "9:05:00", s)

	v, err := tm.ToValueNeutral("14:30:00")
	require.NoError(t, err)
	assert.Equal(t, clock(14, 30, 0), v)

	v, err = tm.ToValueNeutral("14")
	require.NoError(t, err)
	assert.Equal(t, clock(14, 0, 0), v)
}

func TestTimeOfDayCompare(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewTimeOfDay(nil, nil)
	require.NoError(t, err)

	c, err := tm.Compare("2:00 PM", "9:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = tm.Compare(clock(9, 0, 0), time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = tm.Compare(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	n, ok, err := tm.ToNumber("1:00 AM")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3600.0, n)
}

func TestTimeOfDayIsValidChar(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewTimeOfDay(nil, nil)
	require.NoError(t, err)
	for _, ch := range "0123456789: AMPampm" {
		assert.True(t, tm.IsValidChar(ch), "%q", ch)
	}
	assert.False(t, tm.IsValidChar('x'))
	assert.False(t, tm.IsValidChar('/'))
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewDuration(nil, nil)
	require.NoError(t, err)

	v, err := tm.ToValue("30:00:00")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Hour, v)

	v, err = tm.ToValue("1:30")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, v)

	s, err := tm.ToString(30*time.Hour + 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "30:05:00", s)

	neutral, err := tm.ToStringNeutral(30 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "0030:00:00", neutral)

	v, err = tm.ToValueNeutral("0030:00:00")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Hour, v)

	_, err = tm.ToValue("1:30 PM")
	assert.True(t, typemanager.IsConversionError(err))

	_, err = tm.ToString(-time.Minute)
	assert.True(t, typemanager.IsConversionError(err))

	assert.False(t, tm.IsValidChar('A'))
	assert.True(t, tm.IsValidChar(':'))

	t.Run("max hours", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewDuration(nil, typemanager.Options{"maxHours": 24})
		require.NoError(t, err)
		_, err = tm.ToValue("25:00")
		assert.True(t, typemanager.IsInputError(err))
		v, err := tm.ToValue("24:00")
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, v)
	})

	t.Run("short format", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewDuration(nil, typemanager.Options{"timeFormat": "Short"})
		require.NoError(t, err)
		s, err := tm.ToString(100 * time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "100:00", s)
	})

	t.Run("hours as number", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewDuration(nil, typemanager.Options{"valueAsNumber": true, "timeOneEqualsSeconds": 3600})
		require.NoError(t, err)
		assert.Equal(t, typemanager.NativeNumber, tm.NativeKind())
		v, err := tm.ToValue("1:30")
		require.NoError(t, err)
		assert.Equal(t, 1.5, v)
		s, err := tm.ToString(2.5)
		require.NoError(t, err)
		assert.Equal(t, "2:30:00", s)
	})

	t.Run("max hours is not a time of day option", func(t *testing.T) {
		t.Parallel()
		_, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"maxHours": 10})
		assert.ErrorIs(t, err, typemanager.ErrUnknownOption)
	})
}

func TestTimeOptionErrors(t *testing.T) {
	t.Parallel()

	for name, value := range map[string]any{
		"timeFormat":           "Medium",
		"timeOneEqualsSeconds": 0,
		"parseTimeRequires":    "m",
	} {
		_, err := typemanager.NewTimeOfDay(nil, typemanager.Options{name: value})
		assert.ErrorIs(t, err, typemanager.ErrInvalidOption, name)
	}

	_, err := typemanager.NewDuration(nil, typemanager.Options{"maxHours": 0})
	assert.ErrorIs(t, err, typemanager.ErrInvalidOption)

	f, err := typemanager.ParseTimeFormat(2)
	require.NoError(t, err)
	assert.Equal(t, typemanager.TimeLongOmitZeroSeconds, f)
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	value := time.Date(2021, time.June, 1, 14, 30, 0, 0, time.UTC)

	tm, err := typemanager.NewDateTime(nil, nil)
	require.NoError(t, err)

	v, err := tm.ToValue("2021-06-01 14:30:00")
	require.NoError(t, err)
	assert.Equal(t, value, v)

	s, err := tm.ToString(value)
	require.NoError(t, err)
	assert.Equal(t, "6/1/2021 2:30:00 PM", s)

	v, err = tm.ToValue(s)
	require.NoError(t, err)
	assert.Equal(t, value, v)

	v, err = tm.ToValue("6/1/2021")
	require.NoError(t, err)
	assert.Equal(t, date(2021, time.June, 1), v)

	neutral, err := tm.ToStringNeutral(value)
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01 14:30:00", neutral)

	v, err = tm.ToValueNeutral(neutral)
	require.NoError(t, err)
	assert.Equal(t, value, v)

	n, ok, err := tm.ToNumber(date(2021, time.June, 1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1622505600.0, n)

	c, err := tm.Compare("6/1/2021 2:30 PM", value)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = tm.ToValue("6/1/2021 25:00")
	assert.True(t, typemanager.IsInputError(err))

	_, err = tm.ToValue("13/45/2021 2:00 PM")
	assert.True(t, typemanager.IsInputError(err))

	assert.Equal(t, "DateTime(Short, Long, timeRequired=false)", tm.String())
}

func TestDateTimeLong(t *testing.T) {
	t.Parallel()

	value := time.Date(2021, time.June, 1, 14, 30, 0, 0, time.UTC)
	tm, err := typemanager.NewDateTime(nil, typemanager.Options{"dateFormat": "Long"})
	require.NoError(t, err)

	s, err := tm.ToString(value)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday, June 1, 2021 2:30:00 PM", s)

	v, err := tm.ToValue(s)
	require.NoError(t, err)
	assert.Equal(t, value, v)

	v, err = tm.ToValue("June 1, 2021")
	require.NoError(t, err)
	assert.Equal(t, date(2021, time.June, 1), v)
}

func TestDateTimeOptions(t *testing.T) {
	t.Parallel()

	t.Run("time required", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewDateTime(nil, typemanager.Options{"timeRequired": true})
		require.NoError(t, err)
		_, err = tm.ToValue("6/1/2021")
		assert.True(t, typemanager.IsInputError(err))
	})

	t.Run("culture reaches the children", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewDateTime(nil, typemanager.Options{"cultureName": "en-GB"})
		require.NoError(t, err)
		assert.Equal(t, "en-GB", tm.DateManager().CultureName())
		assert.Equal(t, "en-GB", tm.TimeManager().CultureName())

		v, err := tm.ToValue("01/06/2021 14:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2021, time.June, 1, 14, 30, 0, 0, time.UTC), v)
	})

	t.Run("children with their own options", func(t *testing.T) {
		t.Parallel()
		d, err := typemanager.NewDate(nil, typemanager.Options{"dateFormat": "Abbreviated"})
		require.NoError(t, err)
		tod, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"timeFormat": "Short"})
		require.NoError(t, err)
		tm, err := typemanager.NewDateTimeWithChildren(nil, d, tod, nil)
		require.NoError(t, err)
		s, err := tm.ToString(time.Date(2021, time.June, 1, 9, 5, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "Jun 1, 2021 9:05 AM", s)
	})

	t.Run("numeric time child", func(t *testing.T) {
		t.Parallel()
		tod, err := typemanager.NewTimeOfDay(nil, typemanager.Options{"valueAsNumber": true})
		require.NoError(t, err)
		_, err = typemanager.NewDateTimeWithChildren(nil, nil, tod, nil)
		assert.ErrorIs(t, err, typemanager.ErrInvalidOption)
	})

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()
		_, err := typemanager.NewDateTime(nil, typemanager.Options{"valueAsNumber": true})
		assert.ErrorIs(t, err, typemanager.ErrUnknownOption)
	})
}
