// Package engine holds the stateful heart of the dispatch core: the config
// store, the virtual clock and the reconciler that closes overdue deliveries
// whenever the clock moves.
//
// Every mutation of shared state that must not interleave with a clock advance
// runs while holding the exclusive section, a *sync.Mutex created once by the
// composition root and handed to the clock and to the command handlers.
// Reads take one config snapshot per call and never hold the section.
package engine
