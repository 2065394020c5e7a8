package schedule

import (
	"time"

	"slotbook/internal/domain/catalog"
)

// TimeSlot is a candidate appointment window on a provider's calendar.
// It is a value, computed on demand and never stored.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func (s TimeSlot) Start() time.Time        { return s.start }
func (s TimeSlot) End() time.Time          { return s.end }
func (s TimeSlot) Duration() time.Duration { return s.end.Sub(s.start) }

// Generate produces every start time the provider could offer for a service
// of the given duration on the given day: opening through
// (closing - duration), stepped by the provider's granularity, strictly
// increasing. An empty result means no availability, not an error.
func Generate(day time.Time, serviceDuration time.Duration, hours catalog.OperatingHours) []TimeSlot {
	if serviceDuration <= 0 || hours.IsClosed() {
		return nil
	}

	opens, closes := hours.WindowOn(day)
	lastStart := closes.Add(-serviceDuration)
	if lastStart.Before(opens) {
		return nil
	}

	var slots []TimeSlot
	for start := opens; !start.After(lastStart); start = start.Add(hours.Granularity()) {
		slots = append(slots, TimeSlot{start: start, end: start.Add(serviceDuration)})
	}
	return slots
}

// FilterAvailable removes every candidate whose start time matches a taken
// start time, preserving order. Candidates and taken times share the same
// discretized grid, so exact equality is the whole conflict check; if
// variable-duration services ever share one calendar this must become an
// interval-overlap test instead.
func FilterAvailable(candidates []TimeSlot, taken []time.Time) []TimeSlot {
	if len(taken) == 0 {
		return candidates
	}

	free := make([]TimeSlot, 0, len(candidates))
	for _, c := range candidates {
		if !startTaken(c.start, taken) {
			free = append(free, c)
		}
	}
	return free
}

// HasStart reports whether startAt lies exactly on one of the generated
// slot boundaries.
func HasStart(slots []TimeSlot, startAt time.Time) bool {
	for _, s := range slots {
		if s.start.Equal(startAt) {
			return true
		}
	}
	return false
}

func startTaken(start time.Time, taken []time.Time) bool {
	for _, t := range taken {
		if start.Equal(t) {
			return true
		}
	}
	return false
}
