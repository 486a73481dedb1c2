// Package ports declares what the dispatch core needs from the outside world:
// entity storage behind a unit of work, geocoding and routing, event
// publishing and metrics. Adapters under internal/adapters implement them.
package ports
