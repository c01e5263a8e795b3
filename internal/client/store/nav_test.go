package store

import (
	"testing"

	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestRootState(t *testing.T) {
	resolvedUser := UserState{CurrentUserID: "u1"}
	noEvent := EventState{CurrentEventID: models.NoID()}

	tests := []struct {
		name   string
		auth   AuthState
		users  UserState
		events EventState
		want   NavState
	}{
		{name: "not hydrated", auth: AuthState{Token: "t"}, users: resolvedUser, events: noEvent, want: NavLoading},
		{name: "hydrated without token", auth: AuthState{Hydrated: true}, want: NavLogin},
		{name: "user unknown", auth: AuthState{Hydrated: true, Token: "t"}, events: noEvent, want: NavLoading},
		{name: "event unknown", auth: AuthState{Hydrated: true, Token: "t"}, users: resolvedUser, want: NavLoading},
		{name: "no current event", auth: AuthState{Hydrated: true, Token: "t"}, users: resolvedUser, events: noEvent, want: NavMain},
		{
			name:   "with current event",
			auth:   AuthState{Hydrated: true, Token: "t"},
			users:  resolvedUser,
			events: EventState{CurrentEventID: models.SomeID("e1")},
			want:   NavMain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootState(tt.auth, tt.users, tt.events))
		})
	}
}
