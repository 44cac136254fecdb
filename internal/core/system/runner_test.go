package system

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type traceSystem struct {
	name  string
	phase Phase
}

func (s traceSystem) Phase() Phase { return s.phase }

func (s traceSystem) Update(trace *[]string) {
	*trace = append(*trace, s.name)
}

func TestRunner_PhaseOrderIsStable(t *testing.T) {
	r := NewRunner[*[]string]()
	r.Register(traceSystem{"output", PhaseOutput})
	r.Register(traceSystem{"dispatch", PhaseInput})
	r.Register(traceSystem{"turn", PhaseInput})
	r.Register(traceSystem{"color", PhasePropagate})
	r.Register(traceSystem{"cleanup", PhaseCleanup})
	require.Equal(t, 5, r.Len())

	var trace []string
	r.Tick(&trace)
	require.Equal(t, []string{"dispatch", "turn", "color", "cleanup", "output"}, trace)

	trace = trace[:0]
	r.TickPhase(PhaseInput, &trace)
	require.Equal(t, []string{"dispatch", "turn"}, trace)
}

func TestPhase_String(t *testing.T) {
	require.Equal(t, "propagate", PhasePropagate.String())
	require.Equal(t, "unknown", Phase(42).String())
}
