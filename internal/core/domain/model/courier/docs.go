// Package courier provides the Courier aggregate of the dispatch domain.
//
// A courier is identified by a stable numeric id and carries the facts the
// assignment rules need: whether the courier is active, which delivery type
// (vehicle) they use and, optionally, a personal maximum delivery distance.
//
// Key business rules:
//   - Name and phone are mandatory; an email, when given, must look like one
//   - Inactive couriers cannot pick up orders
//   - A personal maximum distance, when set, caps the aerial distance between
//     the depot and any order the courier may pick up
//   - The delivery type selects both the average speed and the route profile
//     (driving or walking) used in arrival-time estimates
package courier
