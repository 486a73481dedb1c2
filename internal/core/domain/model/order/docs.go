// Package order provides the Order aggregate and the status enumerations
// derived for it.
//
// An order records what has to be delivered and where: its type, destination
// address and geocoded coordinates, the parcel's physical attributes, the
// customer, and the moment it was opened. Everything that changes over time
// is not stored on the order. Status is derived from the order's delivery
// history and ScheduleStatus from the clock, see the domain services package.
package order
