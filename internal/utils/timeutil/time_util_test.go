package timeutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/SCR01/chaintrace/internal/utils/testutil"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

func TestTimeToISO8601(t *testing.T) {
	require := testutil.Require(t)
	var nilTime time.Time
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "happy case",
			date:     testutil.MustTime("2020-11-24T16:07:21Z"),
			expected: "2020-11-24T16:07:21Z",
		},
		{
			name:     "zero time",
			date:     time.Time{},
			expected: "",
		},
		{
			name:     "zero time",
			date:     nilTime,
			expected: "",
		},
	}

	for _, test := range tests {
		require.Equal(test.expected, timeutil.TimeToISO8601(test.date))
	}
}

func TestParseISO8601(t *testing.T) {
	require := testutil.Require(t)
	tests := []struct {
		name     string
		value    string
		expected time.Time
		err      bool
	}{
		{
			name:     "happy case",
			value:    "2020-11-24T16:07:21Z",
			expected: testutil.MustTime("2020-11-24T16:07:21Z"),
			err:      false,
		},
		{
			name:     "empty",
			value:    "",
			expected: time.Time{},
			err:      true,
		},
	}

	for _, test := range tests {
		actual, err := timeutil.ParseISO8601(test.value)
		if test.err {
			require.Error(err)
		} else {
			require.NoError(err)
			require.Equal(test.expected, actual)
		}
	}
}

func TestFixedClock(t *testing.T) {
	require := testutil.Require(t)

	now := testutil.MustTime("2020-11-24T16:07:21Z")
	clock := timeutil.NewFixedClock(now)
	require.Equal(now, clock.Now())

	clock.Advance(time.Hour)
	require.Equal(now.Add(time.Hour), clock.Now())
}

func TestSleep(t *testing.T) {
	require := testutil.Require(t)

	require.NoError(timeutil.Sleep(context.Background(), 0))
	require.NoError(timeutil.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := timeutil.Sleep(ctx, time.Minute)
	require.ErrorIs(err, context.Canceled)
	require.Less(time.Since(start), time.Second)
}

func TestMustTime(t *testing.T) {
	require := testutil.Require(t)

	require.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), testutil.MustTime("2024-05-01T12:00:00Z").UTC())
	require.Panics(func() { testutil.MustTime("yesterday") })
}
