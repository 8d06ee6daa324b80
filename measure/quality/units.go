package quality

import "math"

// DefaultFloorDB is the level [ToDecibels] reports for silence.
const DefaultFloorDB = -100.0

// PowerRatioToDB converts a power ratio to decibels: 10·log10(ratio).
// Zero gives -Inf, +Inf gives +Inf, negative or NaN gives NaN.
func PowerRatioToDB(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}

// AmplitudeRatioToDB converts an amplitude ratio to decibels: 20·log10(ratio).
// Zero gives -Inf, negative or NaN gives NaN.
func AmplitudeRatioToDB(ratio float64) float64 {
	return 20 * math.Log10(ratio)
}

// ToDecibels converts a linear gain to decibels, clamped below at floorDB.
// Non-positive gains map to floorDB.
func ToDecibels(gain, floorDB float64) float64 {
	if !(gain > 0) {
		return floorDB
	}
	return math.Max(floorDB, AmplitudeRatioToDB(gain))
}

// FromDecibels converts decibels to a linear gain. Levels at or below
// floorDB map to 0.
func FromDecibels(db, floorDB float64) float64 {
	if db <= floorDB {
		return 0
	}
	return math.Pow(10, db*0.05)
}
