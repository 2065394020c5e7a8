//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, opensMin, closesMin int, granularity time.Duration) catalog.OperatingHours {
	t.Helper()
	hours, err := catalog.NewOperatingHours(opensMin, closesMin, granularity)
	require.NoError(t, err)
	return hours
}

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	t.Run("nine to six with 30 minute steps yields 18 slots", func(t *testing.T) {
		hours := mustHours(t, 9*60, 18*60, 30*time.Minute)

		slots := schedule.Generate(day(t), 30*time.Minute, hours)

		require.Len(t, slots, 18)
		assert.Equal(t, time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), slots[0].Start())
		assert.Equal(t, time.Date(2025, 6, 16, 17, 30, 0, 0, time.UTC), slots[len(slots)-1].Start())
	})

	t.Run("slots are strictly increasing and evenly spaced", func(t *testing.T) {
		hours := mustHours(t, 9*60, 18*60, 45*time.Minute)

		slots := schedule.Generate(day(t), 30*time.Minute, hours)

		require.NotEmpty(t, slots)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i].Start().After(slots[i-1].Start()))
			assert.Equal(t, 45*time.Minute, slots[i].Start().Sub(slots[i-1].Start()))
		}
	})

	t.Run("last slot still fits the service before closing", func(t *testing.T) {
		hours := mustHours(t, 9*60, 18*60, 30*time.Minute)
		closing := time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)

		slots := schedule.Generate(day(t), 90*time.Minute, hours)

		require.NotEmpty(t, slots)
		last := slots[len(slots)-1]
		assert.False(t, last.End().After(closing))
		assert.Equal(t, time.Date(2025, 6, 16, 16, 30, 0, 0, time.UTC), last.Start())
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		hours := mustHours(t, 10*60, 16*60, 30*time.Minute)

		first := schedule.Generate(day(t), 60*time.Minute, hours)
		second := schedule.Generate(day(t), 60*time.Minute, hours)

		assert.Empty(t, cmp.Diff(first, second, cmp.AllowUnexported(schedule.TimeSlot{})))
	})

	t.Run("zero operating hours yields no slots", func(t *testing.T) {
		hours := mustHours(t, 9*60, 9*60, 30*time.Minute)

		slots := schedule.Generate(day(t), 30*time.Minute, hours)

		assert.Empty(t, slots)
	})

	t.Run("service longer than the whole window yields no slots", func(t *testing.T) {
		hours := mustHours(t, 9*60, 10*60, 30*time.Minute)

		slots := schedule.Generate(day(t), 2*time.Hour, hours)

		assert.Empty(t, slots)
	})

	t.Run("service exactly as long as the window yields one slot", func(t *testing.T) {
		hours := mustHours(t, 9*60, 10*60, 30*time.Minute)

		slots := schedule.Generate(day(t), time.Hour, hours)

		require.Len(t, slots, 1)
		assert.Equal(t, time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), slots[0].Start())
	})

	t.Run("time of day on the day argument is ignored", func(t *testing.T) {
		hours := mustHours(t, 9*60, 18*60, 30*time.Minute)
		noon := time.Date(2025, 6, 16, 12, 41, 7, 0, time.UTC)

		fromMidnight := schedule.Generate(day(t), 30*time.Minute, hours)
		fromNoon := schedule.Generate(noon, 30*time.Minute, hours)

		assert.Empty(t, cmp.Diff(fromMidnight, fromNoon, cmp.AllowUnexported(schedule.TimeSlot{})))
	})
}

func TestFilterAvailable(t *testing.T) {
	hours := func(t *testing.T) catalog.OperatingHours {
		return mustHours(t, 9*60, 18*60, 30*time.Minute)
	}

	t.Run("removes exactly the taken slots, order preserved", func(t *testing.T) {
		candidates := schedule.Generate(day(t), 30*time.Minute, hours(t))
		taken := []time.Time{
			time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 16, 15, 30, 0, 0, time.UTC),
		}

		free := schedule.FilterAvailable(candidates, taken)

		require.Len(t, free, len(candidates)-2)
		for _, s := range free {
			for _, tk := range taken {
				assert.False(t, s.Start().Equal(tk))
			}
		}
		for i := 1; i < len(free); i++ {
			assert.True(t, free[i].Start().After(free[i-1].Start()))
		}
	})

	t.Run("no taken slots returns candidates unchanged", func(t *testing.T) {
		candidates := schedule.Generate(day(t), 30*time.Minute, hours(t))

		free := schedule.FilterAvailable(candidates, nil)

		assert.Empty(t, cmp.Diff(candidates, free, cmp.AllowUnexported(schedule.TimeSlot{})))
	})

	t.Run("taken times off the grid remove nothing", func(t *testing.T) {
		candidates := schedule.Generate(day(t), 30*time.Minute, hours(t))
		taken := []time.Time{time.Date(2025, 6, 16, 10, 17, 0, 0, time.UTC)}

		free := schedule.FilterAvailable(candidates, taken)

		assert.Len(t, free, len(candidates))
	})

	t.Run("all slots taken returns empty", func(t *testing.T) {
		candidates := schedule.Generate(day(t), 30*time.Minute, hours(t))
		taken := make([]time.Time, len(candidates))
		for i, c := range candidates {
			taken[i] = c.Start()
		}

		free := schedule.FilterAvailable(candidates, taken)

		assert.Empty(t, free)
	})
}

func TestHasStart(t *testing.T) {
	hours := mustHours(t, 9*60, 18*60, 30*time.Minute)
	slots := schedule.Generate(day(t), 30*time.Minute, hours)

	t.Run("exact boundary matches", func(t *testing.T) {
		assert.True(t, schedule.HasStart(slots, time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC)))
	})

	t.Run("off-grid time does not match", func(t *testing.T) {
		assert.False(t, schedule.HasStart(slots, time.Date(2025, 6, 16, 9, 15, 0, 0, time.UTC)))
	})

	t.Run("before opening does not match", func(t *testing.T) {
		assert.False(t, schedule.HasStart(slots, time.Date(2025, 6, 16, 8, 30, 0, 0, time.UTC)))
	})

	t.Run("after last bookable start does not match", func(t *testing.T) {
		assert.False(t, schedule.HasStart(slots, time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)))
	})
}
