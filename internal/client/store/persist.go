package store

import "github.com/dmitrijs2005/eventclient/internal/client/persist"

// SnapshotOf extracts the persisted part of the auth state.
func SnapshotOf(s AuthState) persist.Snapshot {
	return persist.Snapshot{Token: s.Token}
}

// RestoreAuth rebuilds an auth state from a snapshot. Hydrated is left false;
// setting it is the caller's job.
func RestoreAuth(s persist.Snapshot) AuthState {
	return AuthState{Token: s.Token}
}
