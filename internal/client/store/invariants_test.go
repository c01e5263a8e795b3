package store

import "testing"

// watchPointers fails the test whenever a current pointer references a
// record missing from its mapping after any update.
func watchPointers(t *testing.T, s *Stores) {
	t.Helper()

	s.Users.Subscribe(func(_, next UserState) {
		if next.CurrentUserID == "" {
			return
		}
		if _, ok := next.Users[next.CurrentUserID]; !ok {
			t.Errorf("CurrentUserID %q not in user mapping", next.CurrentUserID)
		}
	})
	s.Events.Subscribe(func(_, next EventState) {
		id, ok := next.CurrentEventID.Get()
		if !ok {
			return
		}
		if _, stored := next.Events[id]; !stored {
			t.Errorf("CurrentEventID %q not in event mapping", id)
		}
	})
}
