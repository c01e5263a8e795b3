package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method      string
	path        string
	query       string
	contentType string
	auth        string
	body        []byte
}

func newTestServer(t *testing.T, status int, respBody string) (*HTTPClient, *captured) {
	t.Helper()

	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.contentType = r.Header.Get("Content-Type")
		got.auth = r.Header.Get("Authorization")
		got.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL+"/", srv.Client()), got
}

func TestURL_CollapsesSlashes(t *testing.T) {
	c := NewHTTPClient("http://host:8080/", nil)
	assert.Equal(t, "http://host:8080/event/info/42", c.URL("event/info/42"))
	assert.Equal(t, "http://host:8080/event/info/42", c.URL("/event/info/42"))
	assert.Equal(t, "http://host:8080", c.BaseURL())
}

func TestRequest_GetWithoutBody(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"id":"42","name":"Party"}`)

	var out EventResponse
	err := c.Request(context.Background(), http.MethodGet, "event/info/42", "T", nil, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/event/info/42", got.path)
	assert.Empty(t, got.contentType)
	assert.Equal(t, "Bearer T", got.auth)
	assert.Empty(t, got.body)
	assert.Equal(t, "Party", out.Name)
}

func TestRequest_NoTokenNoAuthHeader(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"token":"abc"}`)

	resp, err := c.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "abc", resp.Token)
	assert.Empty(t, got.auth)
	assert.Equal(t, "application/json", got.contentType)

	var body LoginRequest
	require.NoError(t, json.Unmarshal(got.body, &body))
	assert.Equal(t, LoginRequest{Username: "alice", Password: "secret123"}, body)
}

func TestRequest_GetBodyBecomesQuery(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `[]`)

	lat, lon := 56.95, 24.1
	_, err := c.FindEvents(context.Background(), "T", FindEventsParams{
		Statuses: []string{"active", "scheduled"},
		Lat:      &lat,
		Lon:      &lon,
	})
	require.NoError(t, err)

	assert.Equal(t, "/event/find", got.path)
	assert.Equal(t, "lat=56.95&lon=24.1&statuses=active&statuses=scheduled", got.query)
	assert.Empty(t, got.contentType)
}

func TestRequest_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, target: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, target: ErrUnauthorized},
		{name: "bad gateway", status: http.StatusBadGateway, target: ErrUnavailable},
		{name: "bad request", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, tt.status, `{"error":"nope"}`)

			err := c.Request(context.Background(), http.MethodGet, "user/info", "T", nil, nil)
			require.Error(t, err)

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestRequest_EmptySuccessBody(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, "")

	var out EventResponse
	require.NoError(t, c.Request(context.Background(), http.MethodPost, "event/close", "T", JSON(CloseEventRequest{EventID: "1"}), &out))
}

func TestRequest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, nil)
	err := c.Request(context.Background(), http.MethodGet, "user/info", "", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestRequest_ContextCanceled(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Request(ctx, http.MethodGet, "user/info", "", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEditSelf_MultipartWithAvatar(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"id":"u1","username":"bob"}`)

	name := "Bob"
	resp, err := c.EditSelf(context.Background(), "T", EditSelfRequest{
		DisplayName: &name,
		Avatar:      []byte{0xff, 0xd8},
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)

	assert.Contains(t, got.contentType, "multipart/form-data; boundary=")
	assert.Contains(t, string(got.body), `name="displayName"`)
	assert.Contains(t, string(got.body), `filename="avatar.jpg"`)
}

func TestEditSelf_JSONWithoutAvatar(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"id":"u1","username":"bob"}`)

	bio := "hi"
	_, err := c.EditSelf(context.Background(), "T", EditSelfRequest{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.contentType)
	assert.JSONEq(t, `{"bio":"hi"}`, string(got.body))
}

func TestAllMedia_UnwrapsList(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"media":[{"id":"m1","type":"image","fileAvailable":true}]}`)

	media, err := c.AllMedia(context.Background(), "T")
	require.NoError(t, err)

	assert.Equal(t, "/info/all_media", got.path)
	require.Len(t, media, 1)
	assert.Equal(t, "m1", media[0].ID)
}

func TestRequest_MultipartOnGetRejected(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", nil)
	err := c.Request(context.Background(), http.MethodGet, "x", "", Multipart(MultipartForm{}), nil)
	require.Error(t, err)
}
