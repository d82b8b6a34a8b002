package api

import (
	"testing"

	"github.com/SCR01/chaintrace/internal/utils/testutil"
)

func TestDistinctChains(t *testing.T) {
	require := testutil.Require(t)

	path := []*PathStep{
		{Chain: "Polygon"},
		{Chain: "Ethereum"},
		nil,
		{Chain: "Polygon"},
		{Chain: "Arbitrum"},
		{Chain: "Ethereum"},
	}
	require.Equal([]string{"Polygon", "Ethereum", "Arbitrum"}, DistinctChains(path))

	chains := DistinctChains(nil)
	require.NotNil(chains)
	require.Empty(chains)
}
