package utils

import (
	"math"
	"strings"
)

// MET (Metabolic Equivalent of Task) values per intensity level, with
// activity-specific overrides. Calories burned = MET × weight_kg × hours.
// Overrides are ordered slices so matching stays deterministic when an
// activity string mentions more than one known activity.
type metOverride struct {
	Activity string
	MET      float64
}

type metLevel struct {
	Default   float64
	Overrides []metOverride
}

var metLevels = map[string]metLevel{
	"light": {
		Default: 2.5,
		Overrides: []metOverride{
			{"yoga", 2.5},
			{"walking", 3.0},
			{"stretching", 2.3},
		},
	},
	"moderate": {
		Default: 5.0,
		Overrides: []metOverride{
			{"weight training", 4.8},
			{"cycling", 5.8},
			{"brisk walking", 4.5},
			{"swimming", 5.8},
			{"dancing", 4.8},
		},
	},
	"high": {
		Default: 9.0,
		Overrides: []metOverride{
			{"running", 11.0},
			{"hiit", 12.0},
			{"jiu jitsu", 10.0},
			{"martial arts", 10.0},
			{"boxing", 12.0},
			{"basketball", 8.0},
			{"soccer", 10.0},
		},
	},
}

// CalculateCaloriesBurned estimates workout expenditure from the MET tables.
// Unknown intensities fall back to moderate; unknown activities use the
// intensity default.
func CalculateCaloriesBurned(activityType, intensity string, durationMinutes int, weightKg float64) float64 {
	level, ok := metLevels[strings.ToLower(strings.TrimSpace(intensity))]
	if !ok {
		level = metLevels["moderate"]
	}

	met := level.Default
	activityLower := strings.ToLower(activityType)
	for _, ov := range level.Overrides {
		if strings.Contains(activityLower, ov.Activity) {
			met = ov.MET
			break
		}
	}

	hours := float64(durationMinutes) / 60.0
	return math.Round(met*weightKg*hours*100) / 100
}
