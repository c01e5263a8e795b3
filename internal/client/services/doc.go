// Package services contains the client features that are not backed by a
// store: the event chat (with its polling loop) and the discover feed.
package services
