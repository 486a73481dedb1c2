package kernel

import "dispatch/internal/pkg/errs"

// RouteProfile selects the road network used for a route distance lookup.
type RouteProfile int

const (
	RouteProfileDriving RouteProfile = iota + 1
	RouteProfileWalking
)

// ErrRouteProfileIsInvalid is returned for profiles outside the declared set.
var ErrRouteProfileIsInvalid = errs.NewValueIsInvalidError("route profile")

func (p RouteProfile) Validate() error {
	switch p {
	case RouteProfileDriving, RouteProfileWalking:
		return nil
	default:
		return ErrRouteProfileIsInvalid
	}
}

// String returns the profile name understood by openrouteservice.
func (p RouteProfile) String() string {
	switch p {
	case RouteProfileDriving:
		return "driving-car"
	case RouteProfileWalking:
		return "foot-walking"
	default:
		return "unknown"
	}
}
