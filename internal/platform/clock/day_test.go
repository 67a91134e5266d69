package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"genie/internal/platform/clock"
)

func TestDayKeyStableWithinLocalDay(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC-7", -7*60*60)
	morning := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	night := time.Date(2026, 3, 14, 23, 59, 59, 999, loc)
	require.Equal(t, "2026-03-14", clock.DayKey(morning))
	require.Equal(t, clock.DayKey(morning), clock.DayKey(night))
	require.Equal(t, "2026-03-15", clock.DayKey(night.Add(time.Nanosecond)))
}

func TestDayKeyUsesInstantLocation(t *testing.T) {
	t.Parallel()
	// 03:00 UTC is still the previous evening seven hours west.
	instant := time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC)
	west := instant.In(time.FixedZone("UTC-7", -7*60*60))
	require.Equal(t, "2026-03-15", clock.DayKey(instant))
	require.Equal(t, "2026-03-14", clock.DayKey(west))
}

func TestNextUnlockBeforeAndAfterHour(t *testing.T) {
	t.Parallel()
	loc := time.Local
	before := time.Date(2026, 5, 1, 4, 59, 0, 0, loc)
	after := time.Date(2026, 5, 1, 5, 1, 0, 0, loc)
	exact := time.Date(2026, 5, 1, 5, 0, 0, 0, loc)

	require.True(t, clock.NextUnlock(before, 5).Equal(time.Date(2026, 5, 1, 5, 0, 0, 0, loc)))
	require.True(t, clock.NextUnlock(after, 5).Equal(time.Date(2026, 5, 2, 5, 0, 0, 0, loc)))
	require.True(t, clock.NextUnlock(exact, 5).Equal(time.Date(2026, 5, 2, 5, 0, 0, 0, loc)), "unlock must be strictly after now")
}

func TestNextUnlockWrapsMonthEnd(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 12, 31, 22, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2027, 1, 1, 5, 0, 0, 0, time.UTC), clock.NextUnlock(now, 5))
}

func TestUntilClampsAndSplits(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 1, 5, 1, 0, 0, time.UTC)
	target := clock.NextUnlock(now, 5)
	require.Equal(t, clock.Remaining{Hours: 23, Minutes: 59}, clock.Until(now, target))
	require.Equal(t, clock.Remaining{}, clock.Until(target, now))
	require.Equal(t, clock.Remaining{}, clock.Until(now, now))
	require.Equal(t, clock.Remaining{}, clock.Until(now, now.Add(59*time.Second)))
}

func TestGateDayKeyFollowsUnlockHour(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	require.Equal(t, "2026-05-01", clock.GateDayKey(time.Date(2026, 5, 2, 4, 59, 0, 0, loc), 5))
	require.Equal(t, "2026-05-02", clock.GateDayKey(time.Date(2026, 5, 2, 5, 0, 0, 0, loc), 5))
	require.Equal(t, "2026-05-02", clock.GateDayKey(time.Date(2026, 5, 2, 23, 59, 0, 0, loc), 5))
	midnight := time.Date(2026, 5, 2, 0, 0, 0, 0, loc)
	require.Equal(t, clock.DayKey(midnight), clock.GateDayKey(midnight, 0))
	require.Equal(t, clock.DayKey(midnight.Add(-time.Minute)), clock.GateDayKey(midnight.Add(-time.Minute), 0))
}
