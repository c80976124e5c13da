package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSlotsFillsWorkdayAroundLunch(t *testing.T) {
	start, err := time.Parse(dateLayout, "2025-03-10")
	require.NoError(t, err)

	slots := planSlots(start, 8)
	require.Len(t, slots, 8)

	wantTimes := []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
	for i, sl := range slots {
		assert.Equal(t, "2025-03-10", sl.date, "slot %d", i)
		assert.Equal(t, wantTimes[i], sl.tm, "slot %d", i)
	}
}

func TestPlanSlotsRollsOverflowToNextDay(t *testing.T) {
	start, err := time.Parse(dateLayout, "2025-03-10")
	require.NoError(t, err)

	slots := planSlots(start, 10)
	require.Len(t, slots, 10)

	for i := 0; i < 8; i++ {
		assert.Equal(t, "2025-03-10", slots[i].date, "slot %d", i)
	}
	assert.Equal(t, "2025-03-11", slots[8].date)
	assert.Equal(t, "09:00", slots[8].tm)
	assert.Equal(t, "2025-03-11", slots[9].date)
	assert.Equal(t, "10:00", slots[9].tm)
}

func TestPlanSlotsRollsOverMonthEnd(t *testing.T) {
	start, err := time.Parse(dateLayout, "2025-03-31")
	require.NoError(t, err)

	slots := planSlots(start, 9)
	require.Len(t, slots, 9)
	assert.Equal(t, "2025-04-01", slots[8].date)
	assert.Equal(t, "09:00", slots[8].tm)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "half hour apart collides", a: "10:30", b: "10:00", want: true},
		{name: "same start collides", a: "10:00", b: "10:00", want: true},
		{name: "exactly one hour apart is free", a: "11:00", b: "10:00", want: false},
		{name: "symmetric", a: "10:00", b: "10:30", want: true},
		{name: "far apart", a: "09:00", b: "16:00", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := overlaps(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOverlapsRejectsMalformedTime(t *testing.T) {
	_, err := overlaps("25:99", "10:00")
	assert.Error(t, err)
}
