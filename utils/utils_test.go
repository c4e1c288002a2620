package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFiletimeToTime(t *testing.T) {
	// The Unix epoch expressed in 100ns intervals since 1601-01-01.
	require.Equal(t, time.Unix(0, 0).UTC(), FiletimeToTime(116444736000000000))

	got := FiletimeToTime(116444736000000000 + 10_000_000)
	require.Equal(t, time.Unix(1, 0).UTC(), got)
}

func TestDuration100ns(t *testing.T) {
	require.Equal(t, time.Second, Duration100ns(10_000_000))
	require.Equal(t, time.Duration(0), Duration100ns(0))
	require.Equal(t, 1500*time.Millisecond, Duration100ns(15_000_000))
}

func TestPrerollToDuration(t *testing.T) {
	require.Equal(t, 3*time.Second, PrerollToDuration(3000))
}
