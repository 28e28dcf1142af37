package domain

// ForecastRecord is one point-in-time reading for a region: the first hourly
// sample ("now") plus the first daily sample ("today"). Every field is
// optional; nil means the upstream omitted the value, which drops the
// corresponding clause from the formatted line rather than erroring.
type ForecastRecord struct {
	CurrentTemp       *float64 // °F
	FeelsLike         *float64 // °F, apparent temperature
	WindSpeed         *float64 // mph
	WindGust          *float64 // mph
	PrecipProbability *float64 // percent
	PrecipLastHour    *float64 // inches
	HighToday         *float64 // °F
	LowToday          *float64 // °F
	PrecipTotalToday  *float64 // inches
}

// Empty reports whether no field of the record is populated. A record can
// come back empty when Open-Meteo has no data for the point; the formatter
// renders it as the "data unavailable" sentinel.
func (r ForecastRecord) Empty() bool {
	return r.CurrentTemp == nil && r.FeelsLike == nil &&
		r.WindSpeed == nil && r.WindGust == nil &&
		r.PrecipProbability == nil && r.PrecipLastHour == nil &&
		r.HighToday == nil && r.LowToday == nil &&
		r.PrecipTotalToday == nil
}
