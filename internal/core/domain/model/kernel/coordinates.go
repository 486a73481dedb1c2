package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// earthRadiusKm is the mean radius used by the haversine formula.
	earthRadiusKm = 6371.0088
)

// ErrCoordinatesAreNotConstructed is returned when zero Coordinates are used.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a WGS84 point: the geocoded location of an order or of the company depot.
//
// Example:
//
//	depot, err := kernel.NewCoordinates(52.5200, 13.4050)
//	if err != nil {
//	    return err
//	}
//	km, _ := depot.AerialDistance(orderLocation)
type Coordinates struct { //nolint:recvcheck // setters need pointer receivers
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates validates both axes and returns the point.
// Every out-of-range axis is reported, not only the first one.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate reports whether c was built through NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Latitude() float64 {
	return c.latitude
}

func (c Coordinates) Longitude() float64 {
	return c.longitude
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", c.latitude, c.longitude)
}

// IsEqual compares two constructed points axis by axis.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.Validate() == nil && other.Validate() == nil &&
		c.latitude == other.latitude && c.longitude == other.longitude
}

// AerialDistance returns the great-circle distance in kilometres.
// It is used for the general reach check on order creation and by the
// offline distance provider; real route lengths come from the routing service.
func (c Coordinates) AerialDistance(other Coordinates) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(c.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := lat2 - lat1
	dLon := degreesToRadians(other.longitude - c.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), nil
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// RoundDistance rounds a distance in kilometres to two decimal places,
// the precision at which delivery distances are recorded.
func RoundDistance(km float64) float64 {
	return math.Round(km*100) / 100
}
