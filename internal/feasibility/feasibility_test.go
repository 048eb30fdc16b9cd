package feasibility_test

import (
	"testing"

	"github.com/g2-testbed/bpgsolver/internal/feasibility"
	"github.com/stretchr/testify/require"
)

func TestCheck_FeasibleWhenCapacityCoversFloors(t *testing.T) {
	report, err := feasibility.Check(
		map[string][]string{"f1": {"l1"}, "f2": {"l1"}},
		map[string]float64{"f1": 3, "f2": 3},
		map[string]float64{"l1": 10},
		feasibility.Options{},
	)
	require.NoError(t, err)
	require.True(t, report.Feasible)
	require.InDelta(t, 6, report.RequiredFloor, 1e-9)
	require.GreaterOrEqual(t, report.MaxFlow, report.RequiredFloor-1e-8)
}

func TestCheck_InfeasibleWhenFloorsExceedSharedLinkCapacity(t *testing.T) {
	report, err := feasibility.Check(
		map[string][]string{"f1": {"l1"}, "f2": {"l1"}},
		map[string]float64{"f1": 6, "f2": 6},
		map[string]float64{"l1": 10},
		feasibility.Options{},
	)
	require.NoError(t, err)
	require.False(t, report.Feasible)
	require.InDelta(t, 10, report.MaxFlow, 1e-9)
}

func TestCheck_RejectsNegativeCapacity(t *testing.T) {
	_, err := feasibility.Check(
		map[string][]string{"f1": {"l1"}},
		map[string]float64{"f1": -1},
		map[string]float64{"l1": 10},
		feasibility.Options{},
	)
	require.ErrorIs(t, err, feasibility.ErrNegativeCapacity)
}

func TestCheck_MultiHopRouteBottleneckedByNarrowestLink(t *testing.T) {
	report, err := feasibility.Check(
		map[string][]string{"f1": {"l1", "l2"}},
		map[string]float64{"f1": 5},
		map[string]float64{"l1": 10, "l2": 3},
		feasibility.Options{},
	)
	require.NoError(t, err)
	require.False(t, report.Feasible)
	require.InDelta(t, 3, report.MaxFlow, 1e-9)
}
