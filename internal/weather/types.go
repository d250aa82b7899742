package weather

import (
	"time"

	"github.com/swelljoe/duskgold/internal/sun"
)

// Location is the first geocoding match for a place name
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Snapshot holds current conditions. Any field may be nil when the
// provider omits it.
type Snapshot struct {
	Temperature         *float64 `json:"temperature_2m"`       // °C
	ApparentTemperature *float64 `json:"apparent_temperature"` // °C
	Precipitation       *float64 `json:"precipitation"`        // mm
	WindSpeed           *float64 `json:"wind_speed_10m"`       // km/h
	CloudCover          *float64 `json:"cloud_cover"`          // %
}

// Empty reports whether no field was provided
func (s *Snapshot) Empty() bool {
	return s.Temperature == nil &&
		s.ApparentTemperature == nil &&
		s.Precipitation == nil &&
		s.WindSpeed == nil &&
		s.CloudCover == nil
}

// Report aggregates everything printed for one query
type Report struct {
	Date     time.Time
	Location Location
	Sun      sun.Times
	// SunErr is set when the date has no sunrise or sunset.
	SunErr error
	// Weather is nil when the fetch failed; WeatherErr says why.
	Weather    *Snapshot
	WeatherErr error
}
