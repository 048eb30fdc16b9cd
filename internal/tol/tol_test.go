package tol_test

import (
	"testing"

	"github.com/g2-testbed/bpgsolver/internal/tol"
	"github.com/stretchr/testify/require"
)

func TestEq_WithinToleranceAtScale(t *testing.T) {
	require.True(t, tol.Eq(1000.0, 1000.0000001, 1e-8))
	require.False(t, tol.Eq(1000.0, 1000.1, 1e-8))
}

func TestEq_SmallValuesUseAbsoluteFloor(t *testing.T) {
	// scale is floored at 1, so tiny values near zero compare absolutely.
	require.True(t, tol.Eq(0.0, 1e-9, 1e-8))
	require.False(t, tol.Eq(0.0, 1e-3, 1e-8))
}

func TestLTE(t *testing.T) {
	require.True(t, tol.LTE(1.0, 2.0, 1e-8))
	require.True(t, tol.LTE(2.0, 2.0, 1e-8))
	require.False(t, tol.LTE(2.0001, 2.0, 1e-8))
}

func TestZero(t *testing.T) {
	require.True(t, tol.Zero(0, 1e-8))
	require.True(t, tol.Zero(1e-9, 1e-8))
	require.False(t, tol.Zero(1e-3, 1e-8))
}
