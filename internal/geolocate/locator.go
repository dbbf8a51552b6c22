// Package geolocate resolves the caller's approximate coordinate. It is a
// best-effort collaborator: every failure path degrades to a configured
// default coordinate instead of surfacing an error, so booking flows are
// never blocked on location.
package geolocate

import (
	"context"
	"net/http"
	"time"

	"matchpoint/pkg/client"
	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"
)

type Locator interface {
	// Resolve always returns a usable coordinate.
	Resolve(ctx context.Context) model.GeoLocation
}

type staticLocator struct {
	location model.GeoLocation
}

// NewStaticLocator always resolves to a fixed coordinate. It is the wiring
// when no geolocation endpoint is configured.
func NewStaticLocator(location model.GeoLocation) Locator {
	return staticLocator{location: location}
}

func (l staticLocator) Resolve(context.Context) model.GeoLocation {
	return l.location
}

type httpLocator struct {
	client   *client.HttpClient
	fallback model.GeoLocation
	timeout  time.Duration
	log      *logger.Logger
}

// NewHTTPLocator queries an external geolocation endpoint returning
// {"lat": .., "lng": ..}. Lookups are capped by their own timeout.
func NewHTTPLocator(baseURL string, timeout time.Duration, fallback model.GeoLocation, log *logger.Logger) Locator {
	return &httpLocator{
		client:   client.NewHttpClient(baseURL, timeout),
		fallback: fallback,
		timeout:  timeout,
		log:      log,
	}
}

func (l *httpLocator) Resolve(ctx context.Context) model.GeoLocation {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.client.GET(ctx, "")
	if err != nil {
		l.log.Warn("Geolocation lookup failed, using default coordinate", "error", err)
		return l.fallback
	}
	if resp.StatusCode != http.StatusOK {
		l.log.Warn("Geolocation lookup failed, using default coordinate", "status", resp.StatusCode)
		return l.fallback
	}

	var location model.GeoLocation
	if err := resp.DecodeJSON(&location); err != nil {
		l.log.Warn("Geolocation response malformed, using default coordinate", "error", err)
		return l.fallback
	}

	if location.Latitude < -90 || location.Latitude > 90 ||
		location.Longitude < -180 || location.Longitude > 180 {
		l.log.Warn("Geolocation response out of range, using default coordinate",
			"lat", location.Latitude,
			"lng", location.Longitude,
		)
		return l.fallback
	}

	return location
}
