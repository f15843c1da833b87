package models

// ActivityRecord contains the raw readings reported by a tracker for one workout
type ActivityRecord struct {
	ActionCount   int     // steps, or strokes for swimming
	DurationHours float64 // hours
	WeightKg      float64 // kg
	HeightCm      float64 // cm, walking only
	PoolLengthM   float64 // m, swimming only
	PoolLaps      int     // swimming only
}

// Report is the summary derived from one ActivityRecord
type Report struct {
	WorkoutType   string
	DurationHours float64 // hours
	DistanceKm    float64 // km
	MeanSpeedKmh  float64 // km/h
	Calories      float64 // kcal
}
