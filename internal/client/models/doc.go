// Package models defines the normalized domain types held by the client
// stores: users, events, media and chat messages, plus the partial patches
// that are merged into them.
package models
