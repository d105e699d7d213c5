package clock

// Table sizes and bucket boundaries.
const (
	HourSlots   = 24
	MinuteSlots = 12

	minutesPerBucket = 5

	// From this minute bucket on (":40") the phrase reads "... TIL" and the
	// hour word already names the next hour.
	hourAdvanceBucket = 8
)

// AdjustMinutes maps a raw minute (0-59) to its five-minute bucket (0-11).
func AdjustMinutes(minute int) int {
	return minute / minutesPerBucket
}

// AdjustHours maps a raw hour (0-23) to its Hours index, advancing to the
// next hour once the minute bucket reads "TWENTY TIL" or later.
func AdjustHours(hour, minuteBucket int) int {
	if minuteBucket < hourAdvanceBucket {
		return hour
	}
	return (hour + 1) % HourSlots
}

// LoopAdd returns the cyclic successor of current in [0, length).
func LoopAdd(length, current int) int {
	return (current + 1) % length
}

// LoopSub returns the cyclic predecessor of current in [0, length).
func LoopSub(length, current int) int {
	return (current - 1 + length) % length
}
