package weather

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/swelljoe/duskgold/internal/sun"
)

// stubProvider returns canned answers and counts calls
type stubProvider struct {
	loc        *Location
	geoErr     error
	snap       *Snapshot
	weatherErr error

	geocodeCalls int
	currentCalls int
}

func (s *stubProvider) Geocode(ctx context.Context, name string) (*Location, error) {
	s.geocodeCalls++
	return s.loc, s.geoErr
}

func (s *stubProvider) Current(ctx context.Context, lat, lon float64, tz string) (*Snapshot, error) {
	s.currentCalls++
	return s.snap, s.weatherErr
}

var munich = &Location{
	Name:      "Munich",
	Country:   "Germany",
	Latitude:  48.137,
	Longitude: 11.576,
	Timezone:  "Europe/Berlin",
}

var solstice = time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

// TestBuildReport_Success tests the full happy path
func TestBuildReport_Success(t *testing.T) {
	stub := &stubProvider{loc: munich, snap: &Snapshot{Temperature: floatPtr(22)}}
	svc := NewService(stub, zaptest.NewLogger(t))

	r, err := svc.BuildReport(context.Background(), "Munich", solstice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Location != *munich {
		t.Errorf("expected location %+v, got %+v", *munich, r.Location)
	}
	if !r.Date.Equal(solstice) {
		t.Errorf("expected date %v, got %v", solstice, r.Date)
	}
	if r.SunErr != nil {
		t.Errorf("unexpected sun error: %v", r.SunErr)
	}
	if !r.Sun.Sunrise.Before(r.Sun.Sunset) {
		t.Errorf("sunrise %v not before sunset %v", r.Sun.Sunrise, r.Sun.Sunset)
	}
	if r.Sun.Sunrise.Hour() >= 6 {
		t.Errorf("expected sunrise before 06:00, got %s", sun.FormatClock(r.Sun.Sunrise))
	}
	if r.Sun.Sunset.Hour() < 20 {
		t.Errorf("expected sunset after 20:00, got %s", sun.FormatClock(r.Sun.Sunset))
	}
	if r.Weather == nil || r.Weather.Temperature == nil || *r.Weather.Temperature != 22 {
		t.Errorf("unexpected weather %+v", r.Weather)
	}
	if r.WeatherErr != nil {
		t.Errorf("unexpected weather error: %v", r.WeatherErr)
	}
}

// TestBuildReport_GeocodeFailureStops tests that nothing runs after a failed lookup
func TestBuildReport_GeocodeFailureStops(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", ErrLocationNotFound},
		{"network", &NetworkError{Service: "geocoding", StatusCode: 502, Err: errors.New("bad gateway")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProvider{geoErr: tt.err}
			svc := NewService(stub, zaptest.NewLogger(t))

			r, err := svc.BuildReport(context.Background(), "Atlantis", solstice)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if r != nil {
				t.Errorf("expected nil report, got %+v", r)
			}
			if stub.currentCalls != 0 {
				t.Errorf("expected no weather call, got %d", stub.currentCalls)
			}
		})
	}
}

// TestBuildReport_NoResultsSingleRequest drives the real client and counts requests
func TestBuildReport_NoResultsSingleRequest(t *testing.T) {
	client, rt := newTestClient(t, jsonHandler(t, http.StatusOK, `{"generationtime_ms":0.2}`))
	svc := NewService(client, zaptest.NewLogger(t))

	_, err := svc.BuildReport(context.Background(), "", solstice)
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
	if rt.calls != 1 {
		t.Errorf("expected exactly 1 request, got %d", rt.calls)
	}
}

// TestBuildReport_WeatherFailureIsSoft tests that a weather outage keeps the sun times
func TestBuildReport_WeatherFailureIsSoft(t *testing.T) {
	netErr := &NetworkError{Service: "forecast", StatusCode: 500, Err: errors.New("boom")}
	stub := &stubProvider{loc: munich, weatherErr: netErr}
	svc := NewService(stub, zaptest.NewLogger(t))

	r, err := svc.BuildReport(context.Background(), "Munich", solstice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Weather != nil {
		t.Errorf("expected nil weather, got %+v", r.Weather)
	}
	if !errors.Is(r.WeatherErr, netErr) {
		t.Errorf("expected weather error %v, got %v", netErr, r.WeatherErr)
	}
	if r.Sun.Sunrise.IsZero() || r.Sun.Sunset.IsZero() {
		t.Error("expected sun times despite weather failure")
	}
}

// TestBuildReport_EmptySnapshot tests that an empty current block is kept, not treated as failure
func TestBuildReport_EmptySnapshot(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Host == "geo.test" {
			jsonHandler(t, http.StatusOK, `{"results":[{"name":"Munich","country":"Germany","latitude":48.137,"longitude":11.576,"timezone":"Europe/Berlin"}]}`)(w, r)
			return
		}
		jsonHandler(t, http.StatusOK, `{"current":{}}`)(w, r)
	})
	svc := NewService(client, zaptest.NewLogger(t))

	r, err := svc.BuildReport(context.Background(), "Munich", solstice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Weather == nil {
		t.Fatal("expected an empty snapshot, got nil")
	}
	if !r.Weather.Empty() {
		t.Errorf("expected all fields nil, got %+v", r.Weather)
	}
	if r.WeatherErr != nil {
		t.Errorf("unexpected weather error: %v", r.WeatherErr)
	}
}

// TestBuildReport_PolarDay tests that a missing sunrise is recorded and weather still fetched
func TestBuildReport_PolarDay(t *testing.T) {
	tromso := &Location{Name: "Tromsø", Country: "Norway", Latitude: 69.649, Longitude: 18.956, Timezone: "Europe/Oslo"}
	stub := &stubProvider{loc: tromso, snap: &Snapshot{}}
	svc := NewService(stub, zaptest.NewLogger(t))

	r, err := svc.BuildReport(context.Background(), "Tromsø", solstice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(r.SunErr, sun.ErrNoSunEvent) {
		t.Errorf("expected ErrNoSunEvent, got %v", r.SunErr)
	}
	if stub.currentCalls != 1 {
		t.Errorf("expected weather to be fetched, got %d calls", stub.currentCalls)
	}
}

// TestBuildReport_InvalidCoordinates tests the defensive range check
func TestBuildReport_InvalidCoordinates(t *testing.T) {
	bad := &Location{Name: "Broken", Latitude: 123, Longitude: 0, Timezone: "UTC"}
	stub := &stubProvider{loc: bad}
	svc := NewService(stub, zaptest.NewLogger(t))

	_, err := svc.BuildReport(context.Background(), "Broken", solstice)
	if !errors.Is(err, sun.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if stub.currentCalls != 0 {
		t.Errorf("expected no weather call, got %d", stub.currentCalls)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	if !(&Snapshot{}).Empty() {
		t.Error("expected zero snapshot to be empty")
	}
	if (&Snapshot{CloudCover: floatPtr(0)}).Empty() {
		t.Error("expected snapshot with a zero value to be non-empty")
	}
}
