// Package store holds the client's application state.
//
// Each store is a Store[S]: a value of type S replaced copy-on-write under a
// mutex, so a state returned by Get is never modified afterwards and may be
// read without locking. Listeners run after the lock is released and receive
// the previous and the new state.
//
// Stores bundles the auth, user and event stores with the Registry that owns
// their reset lifecycle; Session wires the reaction to token changes (reset,
// persist, fetch the current user).
package store
