package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getPairs := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("last wins lookup", func(t *testing.T) {
		kv := getPairs()
		require.Equal(t, "Pavlo", kv.Value("HELLO"))
		require.Equal(t, []string{"World", "Pavlo"}, slices.Clone(kv.Values("hello")))
		require.Equal(t, 4, kv.Len())
	})

	t.Run("set", func(t *testing.T) {
		kv := getPairs().Set("HELLO", "no more Pavlo")

		want := []Pair{
			{"HELLO", "no more Pavlo"},
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, len(want), kv.Len())
		for _, p := range want {
			require.Equal(t, []string{p.Value}, slices.Clone(kv.Values(p.Key)))
		}
	})

	t.Run("set new key", func(t *testing.T) {
		kv := New().
			Add("Pavlo", "the best").
			Set("Glory to", "Ukraine")

		require.Equal(t, 2, kv.Len())
		require.Equal(t, "Ukraine", kv.Value("glory to"))
	})

	t.Run("delete", func(t *testing.T) {
		kv := getPairs().Delete("HELLO")

		want := []Pair{
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, len(want), kv.Len())
		require.False(t, kv.Has("hello"))
	})

	t.Run("pairs iterator preserves order", func(t *testing.T) {
		kv := getPairs()
		var got []Pair
		for k, v := range kv.Pairs() {
			got = append(got, Pair{k, v})
		}

		require.Equal(t, []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"hello", "Pavlo"},
		}, got)
	})

	t.Run("clone is independent", func(t *testing.T) {
		kv := getPairs()
		clone := kv.Clone()
		kv.Clear()

		require.True(t, kv.Empty())
		require.Equal(t, 4, clone.Len())
		require.Equal(t, "bar", clone.Value("foo"))
	})
}
