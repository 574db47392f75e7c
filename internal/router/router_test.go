package router

import (
	"testing"

	"mini_web/internal/http/request"
	"mini_web/internal/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyHandler(body string) Handler {
	return func(req *request.Request) (*response.Response, error) {
		return response.New(body)
	}
}

func invoke(t *testing.T, h Handler) string {
	t.Helper()
	resp, err := h(request.New("GET", "/", nil))
	require.NoError(t, err)
	return resp.Body()
}

func TestFirstRegisteredWins(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(`/same`, "GET", bodyHandler("first")))
	require.NoError(t, r.Register(`/same`, "GET", bodyHandler("second")))

	h, ok := r.Match("/same", "GET")
	require.True(t, ok)
	assert.Equal(t, "first", invoke(t, h))
}

func TestFirstRegisteredWinsOverMoreSpecific(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(`/api/.*`, "GET", bodyHandler("wildcard")))
	require.NoError(t, r.Register(`/api/hello`, "GET", bodyHandler("exact")))

	h, ok := r.Match("/api/hello", "GET")
	require.True(t, ok)
	assert.Equal(t, "wildcard", invoke(t, h))
}

func TestMatch(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(`/`, "GET", bodyHandler("index")))
	require.NoError(t, r.Register(`/api/hello`, "", bodyHandler("hello")))
	require.NoError(t, r.Register(`/api/echo`, "post", bodyHandler("echo")))
	require.NoError(t, r.Register(`/users/\d+`, "GET", bodyHandler("user")))
	require.NoError(t, r.Register(`/a|/b`, "GET", bodyHandler("alt")))

	tests := []struct {
		name       string
		path       string
		method     string
		expectOK   bool
		expectBody string
	}{
		{name: "root", path: "/", method: "GET", expectOK: true, expectBody: "index"},
		{name: "default method is GET", path: "/api/hello", method: "GET", expectOK: true, expectBody: "hello"},
		{name: "method case-insensitive", path: "/api/echo", method: "Post", expectOK: true, expectBody: "echo"},
		{name: "wrong method", path: "/api/echo", method: "GET"},
		{name: "regex pattern", path: "/users/42", method: "GET", expectOK: true, expectBody: "user"},
		{name: "pattern must match whole path", path: "/users/42/edit", method: "GET"},
		{name: "pattern anchored at start", path: "/x/api/hello", method: "GET"},
		{name: "alternation anchored", path: "/a", method: "GET", expectOK: true, expectBody: "alt"},
		{name: "alternation prefix does not match", path: "/abc", method: "GET"},
		{name: "query string is part of path", path: "/api/hello?x=1", method: "GET"},
		{name: "unknown path", path: "/nope", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := r.Match(tt.path, tt.method)
			assert.Equal(t, tt.expectOK, ok)
			if !tt.expectOK {
				assert.Nil(t, h)
				return
			}
			assert.Equal(t, tt.expectBody, invoke(t, h))
		})
	}
}

func TestRegisterErrors(t *testing.T) {
	r := New()

	err := r.Register(`/(unclosed`, "GET", bodyHandler("x"))
	assert.ErrorIs(t, err, ErrInvalidPattern)

	err = r.Register(`/`, "GET", nil)
	assert.ErrorIs(t, err, ErrNilHandler)

	assert.Equal(t, 0, r.Len())
}

func TestFreeze(t *testing.T) {
	r := New()
	require.NoError(t, r.Get(`/`, bodyHandler("index")))
	r.Freeze()

	err := r.Post(`/late`, bodyHandler("late"))
	assert.ErrorIs(t, err, ErrRouterFrozen)
	assert.Equal(t, 1, r.Len())

	_, ok := r.Match("/", "GET")
	assert.True(t, ok)
}

func TestIndependentRouters(t *testing.T) {
	a := New()
	b := New()
	require.NoError(t, a.Get(`/only-a`, bodyHandler("a")))

	_, ok := b.Match("/only-a", "GET")
	assert.False(t, ok)
	_, ok = a.Match("/only-a", "GET")
	assert.True(t, ok)
}
