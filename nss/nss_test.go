package nss_test

import (
	"testing"

	"github.com/g2-testbed/bpgsolver/nss"
	"github.com/stretchr/testify/require"
)

func basicInput() nss.Input {
	return nss.Input{
		F: map[string][]string{
			"f1": {"l1", "l2"},
			"f2": {"l2"},
		},
		C: map[string]float64{
			"l1": 10,
			"l2": 10,
		},
	}
}

func TestNew_RejectsEmptyInput(t *testing.T) {
	_, err := nss.New(nss.Input{}, nss.Options{})
	require.ErrorIs(t, err, nss.ErrEmptyInput)
}

func TestNew_DerivesLAsTransposeOfF(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)

	flowsOfL2, err := s.FlowsOf("l2")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"f1", "f2"}, flowsOfL2)

	flowsOfL1, err := s.FlowsOf("l1")
	require.NoError(t, err)
	require.Equal(t, []string{"f1"}, flowsOfL1)
}

func TestNew_RejectsRouteThroughUnknownLink(t *testing.T) {
	in := basicInput()
	in.F["f3"] = []string{"ghost"}
	_, err := nss.New(in, nss.Options{})
	var routeErr *nss.RouteError
	require.ErrorAs(t, err, &routeErr)
	require.Equal(t, "f3", routeErr.Flow)
	require.Equal(t, "ghost", routeErr.Link)
}

func TestNew_RejectsNonPositiveCapacityOnActiveLink(t *testing.T) {
	in := basicInput()
	in.C["l2"] = 0
	_, err := nss.New(in, nss.Options{})
	var capErr *nss.LinkCapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, "l2", capErr.Link)
}

func TestNew_DefaultsMinRatesToZero(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)
	rates, err := s.MinRates([]string{"f1", "f2"})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, rates)
}

func TestStore_ConnectedLinksExcludesSelf(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)
	neighbors, err := s.ConnectedLinks("l2", nil, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"l1"}, neighbors)
}

func TestStore_UnknownLookupsFail(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)

	_, err = s.LinksOf("ghost")
	require.ErrorIs(t, err, nss.ErrUnknownFlow)

	_, err = s.FlowsOf("ghost")
	require.ErrorIs(t, err, nss.ErrUnknownLink)

	_, err = s.CapacityOf("ghost")
	require.ErrorIs(t, err, nss.ErrUnknownLink)
}

func TestStore_RemoveLinkAndFlowsChargesOtherLinks(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)

	// f1 is the only flow on l1 (rate 4) and also traverses l2.
	cascaded, zeroed, err := s.RemoveLinkAndFlows("l1", map[string]float64{"f1": 4})
	require.NoError(t, err)
	require.Empty(t, zeroed)
	require.Empty(t, cascaded)

	cap, err := s.CapacityOf("l2")
	require.NoError(t, err)
	require.InDelta(t, 6, cap, 1e-9)

	_, err = s.FlowsOf("l1")
	require.ErrorIs(t, err, nss.ErrUnknownLink)
}

func TestStore_RemoveLinkCascadesEmptiedLinks(t *testing.T) {
	in := nss.Input{
		F: map[string][]string{
			"f1": {"l1", "l2"},
		},
		C: map[string]float64{
			"l1": 10,
			"l2": 10,
		},
	}
	s, err := nss.New(in, nss.Options{})
	require.NoError(t, err)

	// Removing l1 also removes f1, which empties l2 as a side effect.
	cascaded, zeroed, err := s.RemoveLinkAndFlows("l1", map[string]float64{"f1": 10})
	require.NoError(t, err)
	require.Equal(t, []string{"l2"}, cascaded)
	require.Empty(t, zeroed)
	require.True(t, s.IsEmpty())
}

func TestStore_OriginalViewsSurviveRemoval(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)

	_, _, err = s.RemoveLinkAndFlows("l1", map[string]float64{"f1": 4})
	require.NoError(t, err)

	origCap, err := s.OriginalCapacity("l1")
	require.NoError(t, err)
	require.Equal(t, 10.0, origCap)

	origFlows, err := s.OriginalFlowsOf("l1")
	require.NoError(t, err)
	require.Equal(t, []string{"f1"}, origFlows)
}

func TestStore_HasSharedFlowsPristineVsActive(t *testing.T) {
	s, err := nss.New(basicInput(), nss.Options{})
	require.NoError(t, err)

	shared, err := s.HasSharedFlows("l1", "l2", false)
	require.NoError(t, err)
	require.True(t, shared)

	_, _, err = s.RemoveLinkAndFlows("l1", map[string]float64{"f1": 4})
	require.NoError(t, err)

	sharedPristine, err := s.HasSharedFlows("l1", "l2", true)
	require.NoError(t, err)
	require.True(t, sharedPristine)
}
