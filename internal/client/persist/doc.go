// Package persist is the on-device storage of the auth snapshot.
//
// Only the session token survives a restart. It is kept in a single record
// under the key "auth" in the local SQLite database, sealed with AES-GCM under
// a key derived from the configured storage secret and a per-device salt.
package persist
