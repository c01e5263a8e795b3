package store

type NavState string

const (
	NavLoading NavState = "loading"
	NavLogin   NavState = "login"
	NavMain    NavState = "main"
)

// RootState derives which root screen to show. It is loading until the
// session is hydrated and, with a token, until both the current user and
// the current event reference are resolved.
func RootState(auth AuthState, users UserState, events EventState) NavState {
	switch {
	case !auth.Hydrated:
		return NavLoading
	case auth.Token == "":
		return NavLogin
	case users.CurrentUserID == "" || !events.CurrentEventID.Known():
		return NavLoading
	default:
		return NavMain
	}
}
