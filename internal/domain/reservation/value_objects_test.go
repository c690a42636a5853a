//go:build unit

package reservation_test

import (
	"math/rand"
	"testing"
	"time"

	"facility-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := mustSlot(t, slotStart, slotEnd)

	tests := []struct {
		name  string
		other reservation.TimeSlot
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "contained", other: mustSlot(t, slotStart.Add(30*time.Minute), slotEnd.Add(-30*time.Minute)), want: true},
		{name: "straddles start", other: mustSlot(t, slotStart.Add(-time.Hour), slotStart.Add(time.Minute)), want: true},
		{name: "straddles end", other: mustSlot(t, slotEnd.Add(-time.Minute), slotEnd.Add(time.Hour)), want: true},
		{name: "touches end", other: mustSlot(t, slotEnd, slotEnd.Add(time.Hour)), want: false},
		{name: "touches start", other: mustSlot(t, slotStart.Add(-time.Hour), slotStart), want: false},
		{name: "disjoint", other: mustSlot(t, slotEnd.Add(24*time.Hour), slotEnd.Add(25*time.Hour)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

// Overlap must agree with the closed-form predicate s1 < e2 && e1 > s2 for any pair.
func TestTimeSlot_OverlapsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(20250310))
	origin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	randomSlot := func() (time.Time, time.Time) {
		start := origin.Add(time.Duration(rng.Intn(48)) * time.Hour)
		end := start.Add(time.Duration(1+rng.Intn(12)) * time.Hour)
		return start, end
	}

	for i := 0; i < 2000; i++ {
		s1, e1 := randomSlot()
		s2, e2 := randomSlot()
		a, b := mustSlot(t, s1, e1), mustSlot(t, s2, e2)

		want := s1.Before(e2) && e1.After(s2)
		require.Equal(t, want, a.Overlaps(b), "a=[%s,%s) b=[%s,%s)", s1, e1, s2, e2)
		require.Equal(t, a.Overlaps(b), b.Overlaps(a))
	}
}

func TestNewTimeSlot(t *testing.T) {
	_, err := reservation.NewTimeSlot(slotStart, slotStart)
	assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)

	_, err = reservation.NewTimeSlot(slotEnd, slotStart)
	assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)

	slot, err := reservation.NewTimeSlot(slotStart, slotEnd)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, slot.Duration())
}
