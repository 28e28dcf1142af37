package domain

import (
	"fmt"
	"math"
	"strings"
)

// FormatRegionLine renders one region's reading as a single bulletin line.
// Clauses appear in a fixed order and a clause is emitted only when all of
// its fields are present:
//
//	**Ogden** Now 54°F (feels 51°F), Wind 8 mph (gusts 15), Chance precip 20%, Last hr 0.00" Hi/Lo 61°F/39°F Today total 0.00"
//
// Temperatures and wind speeds round to the nearest integer, the precip
// chance truncates, and precip amounts keep two decimals. An entirely empty
// record renders as the "data unavailable" sentinel. Never fails.
func FormatRegionLine(name string, rec ForecastRecord) string {
	if rec.Empty() {
		return fmt.Sprintf("**%s** — data unavailable", name)
	}

	parts := []string{fmt.Sprintf("**%s**", name)}
	if rec.CurrentTemp != nil && rec.FeelsLike != nil {
		parts = append(parts, fmt.Sprintf("Now %s (feels %s),", fmtTemp(*rec.CurrentTemp), fmtTemp(*rec.FeelsLike)))
	}
	if rec.WindSpeed != nil && rec.WindGust != nil {
		parts = append(parts, fmt.Sprintf("Wind %d mph (gusts %d),", roundInt(*rec.WindSpeed), roundInt(*rec.WindGust)))
	}
	if rec.PrecipProbability != nil {
		parts = append(parts, fmt.Sprintf("Chance precip %d%%,", int(*rec.PrecipProbability)))
	}
	if rec.PrecipLastHour != nil {
		parts = append(parts, fmt.Sprintf("Last hr %.2f\"", *rec.PrecipLastHour))
	}
	if rec.HighToday != nil && rec.LowToday != nil {
		parts = append(parts, fmt.Sprintf("Hi/Lo %s/%s", fmtTemp(*rec.HighToday), fmtTemp(*rec.LowToday)))
	}
	if rec.PrecipTotalToday != nil {
		parts = append(parts, fmt.Sprintf("Today total %.2f\"", *rec.PrecipTotalToday))
	}

	return strings.TrimSuffix(strings.Join(parts, " "), ",")
}

// ErrorLine renders the inline failure marker for a region whose fetch or
// decode failed. It keeps the same shape as a formatted line so the bulletin
// never changes structure on partial failure.
func ErrorLine(name string, err error) string {
	return fmt.Sprintf("**%s** — error: %v", name, err)
}

func fmtTemp(t float64) string {
	return fmt.Sprintf("%d°F", roundInt(t))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
