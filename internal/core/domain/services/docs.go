// Package services provides the domain rules that span several aggregates of
// the dispatch engine. Every function here is pure: inputs are snapshots of
// entities and configuration, and nothing is read from a clock or a store.
//
// The package includes:
//   - ExpectedArrival: when a courier of a given type is expected at the customer
//   - DeriveOrderStatus and friends: order status from delivery history
//   - ScheduleCalculator: OnTime, AtRisk or Late against the order deadline
//   - PickupPolicy: courier and order eligibility checks for a pickup
package services
