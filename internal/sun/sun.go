// Package sun computes local sunrise and sunset for a place and date.
package sun

import (
	"errors"
	"fmt"
	"math"
	"time"
	_ "time/tzdata"

	"github.com/sixdouglas/suncalc"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidTimezone    = errors.New("invalid time zone")
	ErrNoSunEvent         = errors.New("no sunrise or sunset on this date")
)

// ClockLayout is the HH:MM layout used for display
const ClockLayout = "15:04"

// Times holds the sunrise and sunset instants in the location's zone
type Times struct {
	Sunrise time.Time
	Sunset  time.Time
}

// ValidateCoordinates rejects latitude outside [-90, 90] and longitude
// outside [-180, 180].
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinates, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinates, lon)
	}
	return nil
}

// LoadLocation resolves an IANA zone id
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, fmt.Errorf("%w: empty zone id", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, tz, err)
	}
	return loc, nil
}

// Compute returns sunrise and sunset for the calendar date of date at the
// given place. Only the year, month and day of date are used.
func Compute(lat, lon float64, tz string, date time.Time) (Times, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return Times{}, err
	}
	loc, err := LoadLocation(tz)
	if err != nil {
		return Times{}, err
	}

	y, m, d := date.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, loc)

	times := suncalc.GetTimes(noon, lat, lon)
	rise, okRise := usable(times[suncalc.Sunrise].Value, noon)
	set, okSet := usable(times[suncalc.Sunset].Value, noon)
	if !okRise || !okSet || !rise.Before(set) {
		return Times{}, fmt.Errorf("%w: %04d-%02d-%02d at lat=%.3f", ErrNoSunEvent, y, m, d, lat)
	}

	return Times{
		Sunrise: rise.In(loc),
		Sunset:  set.In(loc),
	}, nil
}

// usable reports whether t is a real event near noon. suncalc yields
// undefined instants when the sun never crosses the horizon.
func usable(t, noon time.Time) (time.Time, bool) {
	if t.IsZero() {
		return t, false
	}
	diff := t.Sub(noon)
	if diff < -24*time.Hour || diff > 24*time.Hour {
		return t, false
	}
	return t, true
}

// FormatClock renders t as HH:MM in its own zone
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
