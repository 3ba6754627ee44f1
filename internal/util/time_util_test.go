package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		d, err := ParseDate(" 2024-02-29 ")
		require.NoError(t, err)
		require.Equal(t, NewDate(2024, 2, 29), d)
	})

	t.Run("timestamp is truncated", func(t *testing.T) {
		d, err := ParseDate("2024-02-29T23:10:00Z")
		require.NoError(t, err)
		require.Equal(t, NewDate(2024, 2, 29), d)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("02/29/2024")
		require.Error(t, err)
	})
}

func TestTruncateToDay(t *testing.T) {
	t.Run("converts to utc first", func(t *testing.T) {
		loc := time.FixedZone("EST", -5*60*60)
		in := time.Date(2024, 3, 1, 22, 0, 0, 0, loc)
		require.Equal(t, NewDate(2024, 3, 2), TruncateToDay(in))
		require.Equal(t, "2024-03-02", FormatDate(in))
	})
}
