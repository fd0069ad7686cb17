package urldecode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("plain passthrough", func(t *testing.T) {
		require.Equal(t, "/path/to/something", Decode("/path/to/something"))
	})

	t.Run("escaped sequences", func(t *testing.T) {
		require.Equal(t, "/hello world", Decode("/hello%20world"))
		require.Equal(t, "/день", Decode("/%d0%b4%d0%b5%d0%bd%d1%8c"))
		require.Equal(t, "100%", Decode("100%25"))
	})

	t.Run("undecodable sequences pass through", func(t *testing.T) {
		require.Equal(t, "/trailing%", Decode("/trailing%"))
		require.Equal(t, "/short%2", Decode("/short%2"))
		require.Equal(t, "/bad%zz", Decode("/bad%zz"))
		require.Equal(t, "/%2x", Decode("/%2x"))
	})

	t.Run("idempotent on decoded input", func(t *testing.T) {
		for _, sample := range []string{
			"/path/to/something",
			"/hello%20world",
			"/bad%zz",
			"?with=this&and=that",
		} {
			once := Decode(sample)
			require.Equal(t, once, Decode(once), sample)
		}
	})
}
