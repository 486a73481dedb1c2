// Package delivery provides the Delivery entity: one attempt by one courier
// to bring one order to its customer.
//
// A delivery is created active on pickup and closed exactly once with an end
// type and an end time. Closed deliveries are immutable; another attempt for
// the same order is a new delivery. Administrative cancellations of orders
// that were never picked up are recorded as deliveries without a courier
// (courier id 0) that are created already closed.
package delivery
