package weather

// Condition is a coarse description of a forecast used for packing advice.
type Condition string

// Forecast conditions.
const (
	ConditionCold Condition = "cold"
	ConditionMild Condition = "mild"
	ConditionWarm Condition = "warm"
	ConditionHot  Condition = "hot"
)

const rainProbabilityThreshold = 40

// Summary condenses a multi-day forecast into what matters when packing.
type Summary struct {
	Condition Condition
	AvgHighC  float64
	AvgLowC   float64
	RainyDays int
}

// Summarize reduces the forecast to a packing-oriented summary.
func Summarize(forecast *Forecast) Summary {
	if forecast == nil || len(forecast.Days) == 0 {
		return Summary{Condition: ConditionMild}
	}

	var highSum, lowSum float64
	var rainy int
	for _, day := range forecast.Days {
		highSum += day.MaxTempC
		lowSum += day.MinTempC
		if day.PrecipProbability >= rainProbabilityThreshold || day.PrecipitationMM >= 1.0 {
			rainy++
		}
	}

	n := float64(len(forecast.Days))
	summary := Summary{
		AvgHighC:  highSum / n,
		AvgLowC:   lowSum / n,
		RainyDays: rainy,
	}

	switch {
	case summary.AvgHighC < 10:
		summary.Condition = ConditionCold
	case summary.AvgHighC < 20:
		summary.Condition = ConditionMild
	case summary.AvgHighC < 28:
		summary.Condition = ConditionWarm
	default:
		summary.Condition = ConditionHot
	}
	return summary
}

// NeedsRainLayer reports whether the forecast calls for waterproof outerwear.
func (s Summary) NeedsRainLayer() bool {
	return s.RainyDays > 0
}

// NeedsWarmLayer reports whether the forecast calls for warm outerwear.
func (s Summary) NeedsWarmLayer() bool {
	return s.Condition == ConditionCold || s.AvgLowC < 8
}
