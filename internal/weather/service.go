package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/swelljoe/duskgold/internal/sun"
)

// Provider is the subset of Client the service depends on
type Provider interface {
	Geocode(ctx context.Context, name string) (*Location, error)
	Current(ctx context.Context, lat, lon float64, tz string) (*Snapshot, error)
}

// Service sequences geocoding, the sun calculation and the weather fetch
type Service struct {
	client Provider
	logger *zap.Logger
}

// NewService creates a new weather service
func NewService(client Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// BuildReport resolves city and gathers sun times and current conditions
// for the calendar date of date. Geocoding failures abort the run; a
// weather failure or a polar day is recorded on the report instead.
func (s *Service) BuildReport(ctx context.Context, city string, date time.Time) (*Report, error) {
	// 1. Geocode. Nothing downstream can run without coordinates.
	loc, err := s.client.Geocode(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", city, err)
	}

	if err := sun.ValidateCoordinates(loc.Latitude, loc.Longitude); err != nil {
		return nil, err
	}

	r := &Report{
		Date:     date,
		Location: *loc,
	}

	// 2. Sunrise and sunset
	times, err := sun.Compute(loc.Latitude, loc.Longitude, loc.Timezone, date)
	switch {
	case err == nil:
		r.Sun = times
	case errors.Is(err, sun.ErrNoSunEvent):
		s.logger.Warn("no sun event", zap.String("city", loc.Name), zap.Error(err))
		r.SunErr = err
	default:
		return nil, err
	}

	// 3. Current conditions (best effort)
	snap, err := s.client.Current(ctx, loc.Latitude, loc.Longitude, loc.Timezone)
	if err != nil {
		s.logger.Warn("failed to get current conditions", zap.String("city", loc.Name), zap.Error(err))
		r.WeatherErr = err
		return r, nil
	}
	r.Weather = snap

	return r, nil
}
