// Package kernel provides the value objects shared by every aggregate of the
// dispatch domain.
//
// The package includes:
//   - UUID: identifier of orders and deliveries
//   - Coordinates: a validated latitude/longitude pair with great-circle distance
//   - RouteProfile: the road network a courier travels on (driving or walking)
//
// All values are immutable. Coordinates embed a constructor guard so that a
// zero value is rejected wherever it would silently mean "somewhere off the
// coast of Africa".
package kernel
