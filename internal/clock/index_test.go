package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustMinutes(t *testing.T) {
	tests := []struct {
		minute int
		want   int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{29, 5},
		{42, 8},
		{59, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AdjustMinutes(tt.minute), "minute %d", tt.minute)
	}
}

func TestAdjustMinutesRange(t *testing.T) {
	for m := 0; m < 60; m++ {
		mi := AdjustMinutes(m)
		assert.GreaterOrEqual(t, mi, 0)
		assert.Less(t, mi, MinuteSlots)
	}
}

func TestAdjustHours(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		bucket int
		want   int
	}{
		{"midnight", 0, 0, 0},
		{"before advance", 1, 7, 1},
		{"advance at :40", 0, 8, 1},
		{"advance to noon", 11, 8, 12},
		{"wrap to midnight", 23, 8, 0},
		{"wrap late", 23, 11, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustHours(tt.hour, tt.bucket))
		})
	}
}

func TestAdjustHoursRange(t *testing.T) {
	for h := 0; h < 24; h++ {
		for mi := 0; mi < MinuteSlots; mi++ {
			hi := AdjustHours(h, mi)
			assert.GreaterOrEqual(t, hi, 0)
			assert.Less(t, hi, HourSlots)
		}
	}
}

func TestLoopArithmetic(t *testing.T) {
	assert.Equal(t, 1, LoopAdd(12, 0))
	assert.Equal(t, 0, LoopAdd(12, 11))
	assert.Equal(t, 11, LoopSub(12, 0))
	assert.Equal(t, 23, LoopSub(24, 0))
	assert.Equal(t, 4, LoopSub(24, 5))

	for n := 0; n < HourSlots; n++ {
		assert.Equal(t, n, LoopSub(HourSlots, LoopAdd(HourSlots, n)))
	}
}
