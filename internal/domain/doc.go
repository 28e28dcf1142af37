// Package domain models the weather-net bulletin: the fixed region catalog,
// per-region forecast readings, alert headlines, and the formatted bulletin
// text itself.
//
// # Data Sources
//
// Forecast readings come from the Open-Meteo point-forecast API
// (https://open-meteo.com/), queried per region coordinate with imperial
// units (°F, mph, inches) and locale-resolved timezone. The client reads
// index 0 of the hourly arrays as "now" and index 0 of the daily arrays as
// "today". Open-Meteo serves sparse data for some points: any array may be
// missing, empty, or contain nulls. Absence is not an error — a nil field
// simply drops its clause from the formatted line.
//
// Alert headlines come from the National Weather Service active-alerts feed
// (https://api.weather.gov/alerts/active?area=UT). The NWS requires a
// descriptive User-Agent identifying the client and a contact address. Each
// feature carries a "headline" property ("Winter Storm Warning issued ...")
// with a coarser "event" property ("Winter Storm Warning") as fallback. The
// same condition recurs verbatim across zone-scoped features, so headlines
// are deduplicated in first-seen order and capped at [MaxAlerts].
//
// # Bulletin Format
//
// A bulletin is an ordered sequence of Discord-markdown lines:
//
//	📻 **UOC Weather Net — Utah** · Jan 02, 03:04 PM
//
//	🚨 **Active Watches/Warnings (NWS)**
//	• Winter Storm Warning issued ...
//
//	🗺️ **Regional Conditions**
//	__Wasatch Front & Canyons__
//	• **Ogden** Now 54°F (feels 51°F), Wind 8 mph (gusts 15), ...
//
// A region whose fetch fails is reported inline ("• **Ogden** — error: ...")
// rather than aborting the cycle; a reading with no usable fields renders as
// the "data unavailable" sentinel.
//
// # Chunking
//
// Discord rejects messages over 2000 characters. [ChunkLines] greedily packs
// whole lines into chunks of at most [DefaultChunkLen] runes (1900, leaving
// headroom for the trailing newline trim and any server-side accounting).
// Lines are never split: a single oversized line ships whole as its own
// chunk. Sizes count runes, not bytes, because Discord counts codepoints
// and the bulletin is emoji-heavy.
package domain
