// Package pipeline orchestrates the bulletin lifecycle: compose the ordered
// line sequence, chunk it, publish it, and repeat on a fixed interval.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-net-bot/internal/domain"
	"github.com/couchcryptid/weather-net-bot/internal/observability"
	"github.com/jonboulle/clockwork"
)

// ForecastFetcher retrieves one region's reading.
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, lat, lon float64) (domain.ForecastRecord, error)
}

// AlertsFetcher retrieves the raw active alert headlines for the area.
// Implementations degrade all failures to an empty list; alert availability
// never aborts a bulletin.
type AlertsFetcher interface {
	FetchActiveAlerts(ctx context.Context) []string
}

const (
	titleLabel      = "📻 **UOC Weather Net — Utah**"
	alertsHeader    = "🚨 **Active Watches/Warnings (NWS)**"
	regionsHeader   = "🗺️ **Regional Conditions**"
	titleTimeLayout = "Jan 02, 03:04 PM"
)

// Composer assembles one bulletin: a timestamped title, the alert section,
// and the grouped regional conditions, in catalog order.
type Composer struct {
	catalog   *domain.Catalog
	forecasts ForecastFetcher
	alerts    AlertsFetcher
	clock     clockwork.Clock
	pacing    time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewComposer wires a composer. Pacing is the delay inserted between
// consecutive region fetches so the forecast upstream is not hammered with
// 41 back-to-back requests.
func NewComposer(
	catalog *domain.Catalog,
	forecasts ForecastFetcher,
	alerts AlertsFetcher,
	clock clockwork.Clock,
	pacing time.Duration,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Composer {
	return &Composer{
		catalog:   catalog,
		forecasts: forecasts,
		alerts:    alerts,
		clock:     clock,
		pacing:    pacing,
		logger:    logger,
		metrics:   metrics,
	}
}

// Compose builds the full ordered line sequence for one cycle. A
// single-region failure becomes an inline error line; the only way Compose
// itself fails is context cancellation, so a returned bulletin is always
// structurally complete.
func (c *Composer) Compose(ctx context.Context) ([]string, error) {
	now := c.clock.Now().Local()
	lines := []string{fmt.Sprintf("%s · %s", titleLabel, now.Format(titleTimeLayout))}

	alerts := domain.DedupeHeadlines(c.alerts.FetchActiveAlerts(ctx))
	c.metrics.ActiveAlerts.Set(float64(len(alerts)))
	if len(alerts) > 0 {
		lines = append(lines, "", alertsHeader)
		for _, h := range alerts {
			lines = append(lines, "• "+h)
		}
	}

	lines = append(lines, "", regionsHeader)

	fetched := 0
	for _, group := range c.catalog.Groups() {
		lines = append(lines, fmt.Sprintf("__%s__", group.Header))
		for _, name := range group.Members {
			if fetched > 0 {
				if err := sleepWithClock(ctx, c.clock, c.pacing); err != nil {
					return nil, err
				}
			}
			fetched++
			lines = append(lines, "• "+c.regionLine(ctx, name))
		}
	}

	return lines, nil
}

// regionLine fetches and formats one region, absorbing any failure into the
// line itself so one bad region never costs the other forty.
func (c *Composer) regionLine(ctx context.Context, name string) string {
	region, ok := c.catalog.Region(name)
	if !ok {
		// Unreachable after catalog validation at startup.
		return domain.ErrorLine(name, fmt.Errorf("unknown region"))
	}

	rec, err := c.forecasts.FetchForecast(ctx, region.Lat, region.Lon)
	if err != nil {
		c.metrics.RegionFetchErrors.Inc()
		c.logger.Warn("region fetch failed", "region", name, "error", err)
		return domain.ErrorLine(name, err)
	}
	return domain.FormatRegionLine(name, rec)
}

// sleepWithClock waits d on the injected clock, returning early when the
// context is cancelled.
func sleepWithClock(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}
