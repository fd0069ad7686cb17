package http

import (
	"testing"

	"github.com/strand-web/strand/http/status"
	"github.com/stretchr/testify/require"
)

func TestControl(t *testing.T) {
	t.Run("consume is one-shot", func(t *testing.T) {
		ctl := NewControl(nil)
		require.NoError(t, ctl.Consume())
		require.True(t, ctl.Consumed())
		require.ErrorIs(t, ctl.Consume(), status.ErrControlConsumed)
	})

	t.Run("wake reaches the transport", func(t *testing.T) {
		var woken []Next
		ctl := NewControl(func(next Next) {
			woken = append(woken, next)
		})

		require.NoError(t, ctl.Consume())
		ctl.Wake(NextRead)
		ctl.Wake(NextWrite)
		require.Equal(t, []Next{NextRead, NextWrite}, woken)
	})

	t.Run("nil wake is inert", func(t *testing.T) {
		require.NotPanics(t, func() {
			NewControl(nil).Wake(NextEnd)
		})
	})
}
