package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBus_DeliversNextTickInOrder(t *testing.T) {
	b := NewBus()

	var got []string
	Subscribe(b, func(e TurnAdvanced) { got = append(got, "turn") })
	Subscribe(b, func(e EntitySpawned) { got = append(got, "spawn:"+e.Name) })

	Emit(b, EntitySpawned{Name: "a"})
	Emit(b, TurnAdvanced{Turn: 2})
	Emit(b, EntitySpawned{Name: "b"})
	require.Equal(t, 3, b.Pending())

	// Nothing delivered before the swap.
	require.Equal(t, 0, b.DispatchAll())
	require.Empty(t, got)

	b.SwapBuffers()
	require.Equal(t, 0, b.Pending())
	require.Equal(t, 3, b.DispatchAll())
	require.Equal(t, []string{"spawn:a", "turn", "spawn:b"}, got)

	// The next swap drops what was already delivered.
	b.SwapBuffers()
	require.Equal(t, 0, b.DispatchAll())
	require.Len(t, got, 3)
}

func TestBus_UnsubscribedTypesAreSkipped(t *testing.T) {
	b := NewBus()
	calls := 0
	Subscribe(b, func(e ActionPerformed) { calls++ })

	Emit(b, EntityDespawned{Name: "x"})
	Emit(b, ActionPerformed{Action: "Recruit"})
	b.SwapBuffers()

	require.Equal(t, 1, b.DispatchAll())
	require.Equal(t, 1, calls)
}
