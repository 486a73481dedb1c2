// Package geo resolves addresses and road distances: openrouteservice when an
// API key is configured, straight-line estimates otherwise, optionally behind
// a redis cache.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const DefaultORSBaseURL = "https://api.openrouteservice.org"

var ErrAPIKeyIsRequired = errs.NewValueIsRequiredError("openrouteservice api key")

type ORSConfig struct {
	APIKey  string
	BaseURL string
	// RequestTimeout bounds every single HTTP attempt.
	RequestTimeout time.Duration
	// Country restricts geocoding results, ISO 3166 alpha-2. Empty means worldwide.
	Country string
}

// ORSProvider implements ports.DistanceProvider on top of openrouteservice.
// Transient failures are retried with exponential backoff.
// The provider is safe for concurrent use.
type ORSProvider struct {
	session *http.Client
	cfg     ORSConfig
	backoff time.Duration
	logger  *slog.Logger
}

func NewORSProvider(cfg ORSConfig, logger *slog.Logger) (*ORSProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyIsRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultORSBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	return &ORSProvider{
		session: &http.Client{},
		cfg:     cfg,
		backoff: 200 * time.Millisecond,
		logger:  logger.With("component", "ors"),
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves address with /geocode/search. An address without results,
// or one the service rejects as a bad request, is reported as invalid.
func (o *ORSProvider) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	norm := normalize(address)
	if norm == "" {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, errs.NewValueIsRequiredError("address"))
	}

	resp, err := o.doWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, o.cfg.BaseURL+"/geocode/search", nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		if o.cfg.Country != "" {
			q.Set("boundary.country", o.cfg.Country)
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusBadRequest {
			return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, err)
		}
		return kernel.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kernel.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(decoded.Features) == 0 {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, errors.New("no geocode results"))
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return kernel.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", norm)
	}

	// GeoJSON order is longitude, latitude.
	return kernel.NewCoordinates(coords[1], coords[0])
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
		} `json:"summary"`
	} `json:"routes"`
}

// RouteDistance asks /v2/directions/{profile} for the road distance in km.
func (o *ORSProvider) RouteDistance(
	ctx context.Context,
	from, to kernel.Coordinates,
	profile kernel.RouteProfile,
) (float64, error) {
	if err := profile.Validate(); err != nil {
		return 0, err
	}

	body, err := json.Marshal(directionsRequest{Coordinates: [][2]float64{
		{from.Longitude(), from.Latitude()},
		{to.Longitude(), to.Latitude()},
	}})
	if err != nil {
		return 0, fmt.Errorf("encode directions request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.cfg.BaseURL, profile)
	resp, err := o.doWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		if unroutable(err) {
			return 0, errs.NewValueIsInvalidErrorWithCause("route", err)
		}
		return 0, fmt.Errorf("route %s: %w", profile, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode directions response: %w", err)
	}
	if len(decoded.Routes) == 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("route", errors.New("directions response has no routes"))
	}

	meters := decoded.Routes[0].Summary.Distance
	if meters < 0 {
		return 0, fmt.Errorf("negative route distance %v", meters)
	}
	return meters / 1000, nil
}

// unroutable reports a client error about the points themselves, such as a
// location too far from any road. Credential and rate limit errors are not.
func unroutable(err error) bool {
	var he *httpStatusError
	if !errors.As(err, &he) || he.Code < 400 || he.Code >= 500 {
		return false
	}
	switch he.Code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return false
	}
	return true
}

// normalize collapses whitespace so equal addresses share cache keys.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
