package router

import (
	"testing"

	"github.com/strand-web/strand/handler"
	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/http/method"
	"github.com/stretchr/testify/require"
)

func nopHandler(*http.Context, *http.Response) *http.Response {
	return nil
}

func TestTableStatic(t *testing.T) {
	table := NewTable().
		Get("/users", nopHandler).
		Post("/users", nopHandler)

	t.Run("hit", func(t *testing.T) {
		endpoint := table.Find(method.GET, "/users")
		require.NotNil(t, endpoint.Handler)
		require.True(t, endpoint.Variables.Empty())
	})

	t.Run("method miss keeps hyperlinks", func(t *testing.T) {
		endpoint := table.Find(method.DELETE, "/users")
		require.Nil(t, endpoint.Handler)
		require.Equal(t, []http.Link{
			{Method: method.GET, Path: "/users"},
			{Method: method.POST, Path: "/users"},
		}, endpoint.Hyperlinks)
	})

	t.Run("path miss", func(t *testing.T) {
		endpoint := table.Find(method.GET, "/missing")
		require.Nil(t, endpoint.Handler)
		require.Empty(t, endpoint.Hyperlinks)
	})
}

func TestTableDynamic(t *testing.T) {
	table := NewTable().
		Get("/users/:id", nopHandler).
		Get("/users/:id/posts/:post", nopHandler)

	t.Run("single variable", func(t *testing.T) {
		endpoint := table.Find(method.GET, "/users/42")
		require.NotNil(t, endpoint.Handler)
		require.Equal(t, "42", endpoint.Variables.Value("id"))
	})

	t.Run("two variables", func(t *testing.T) {
		endpoint := table.Find(method.GET, "/users/42/posts/7")
		require.NotNil(t, endpoint.Handler)
		require.Equal(t, "42", endpoint.Variables.Value("id"))
		require.Equal(t, "7", endpoint.Variables.Value("post"))
	})

	t.Run("segment count must match", func(t *testing.T) {
		require.Nil(t, table.Find(method.GET, "/users").Handler)
		require.Nil(t, table.Find(method.GET, "/users/42/posts").Handler)
	})

	t.Run("empty segment never binds", func(t *testing.T) {
		require.Nil(t, table.Find(method.GET, "/users//posts/7").Handler)
	})

	t.Run("hyperlinks on dynamic method miss", func(t *testing.T) {
		endpoint := table.Find(method.PUT, "/users/42")
		require.Nil(t, endpoint.Handler)
		require.Equal(t, []http.Link{{Method: method.GET, Path: "/users/:id"}}, endpoint.Hyperlinks)
	})
}

func TestTableSharedEntry(t *testing.T) {
	var table Router = NewTable().
		Route(method.GET, "/things/:id", handler.Func(nopHandler)).
		Route(method.DELETE, "/things/:id", handler.Func(nopHandler))

	endpoint := table.Find(method.DELETE, "/things/9")
	require.NotNil(t, endpoint.Handler)
	require.Len(t, endpoint.Hyperlinks, 2)
}
