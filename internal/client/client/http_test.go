package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordJSON = `{
	"id": "c1",
	"name": "Ana",
	"email": "ana@example.com",
	"telefone": "11999990000",
	"birth_date": "1990-05-10T00:00:00.000Z",
	"created_at": "2024-03-01T12:30:00.000Z",
	"updated_at": "2024-03-01T12:30:00.000Z"
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL+"/", 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_ValidatesURL(t *testing.T) {
	for _, bad := range []string{"", "localhost:3000", "ftp://x", "http://", "://x"} {
		_, err := NewHTTPClient(bad, time.Second)
		assert.Error(t, err, bad)
	}
	_, err := NewHTTPClient(" https://api.example.com/v1 ", time.Second)
	assert.NoError(t, err)
}

func TestHTTPClient_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		_, _ = io.WriteString(w, "["+recordJSON+"]")
	})

	got, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
	require.NotNil(t, got[0].Phone)
	assert.Equal(t, "11999990000", *got[0].Phone)
}

func TestHTTPClient_List_NullBodyIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "null")
	})

	got, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHTTPClient_Create_SendsDraft(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"name": "Ana", "email": "ana@example.com", "telefone": "11999990000", "birth_date": "1990-05-10",
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, recordJSON)
	})

	got, err := c.Create(context.Background(), models.Draft{
		Name: "Ana", Email: "ana@example.com", Phone: "11999990000", BirthDate: "1990-05-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
}

func TestHTTPClient_Update_UsesPatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/c1", r.URL.Path)
		_, _ = io.WriteString(w, recordJSON)
	})

	got, err := c.Update(context.Background(), "c1", models.Draft{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestHTTPClient_Delete(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/c1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Delete(context.Background(), "c1"))
	assert.True(t, called)
}

func TestHTTPClient_BaseURLWithPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		_, _ = io.WriteString(w, "[]")
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/api", time.Second)
	require.NoError(t, err)
	_, err = c.List(context.Background())
	require.NoError(t, err)
}

func TestHTTPClient_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []string
	}{
		{name: "message list", status: 400, body: `{"message":["Email already in use","x"],"statusCode":400}`, want: []string{"Email already in use", "x"}},
		{name: "message string", status: 409, body: `{"message":"Email already in use"}`, want: []string{"Email already in use"}},
		{name: "message of wrong type", status: 400, body: `{"message":{"a":1}}`, want: nil},
		{name: "list with non strings", status: 400, body: `{"message":[1,"ok",null]}`, want: []string{"ok"}},
		{name: "empty list", status: 400, body: `{"message":[]}`, want: []string{}},
		{name: "html body", status: 502, body: `<html>bad gateway</html>`, want: nil},
		{name: "empty body", status: 500, body: ``, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Update(context.Background(), "c1", models.Draft{})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			if len(tt.want) == 0 {
				assert.Empty(t, apiErr.Messages)
				assert.Equal(t, "fallback", UserMessage(err, "fallback"))
			} else {
				assert.Equal(t, tt.want, []string(apiErr.Messages))
				assert.Equal(t, tt.want[0], UserMessage(err, "fallback"))
				assert.Equal(t, tt.want[0], apiErr.Error())
			}
		})
	}
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, time.Second)
	require.NoError(t, err)

	_, err = c.List(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func TestHTTPClient_BadJSONOnSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "{not json")
	})

	_, err := c.List(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestAPIError_ErrorWithoutMessages(t *testing.T) {
	e := &APIError{Status: 500}
	assert.Equal(t, "unexpected status 500 Internal Server Error", e.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Status: 404}))
	assert.False(t, IsNotFound(&APIError{Status: 400}))
	assert.False(t, IsNotFound(errors.New("x")))
}
