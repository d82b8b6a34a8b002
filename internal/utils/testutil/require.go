package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Require returns a require.Assertions bound to t, so that assertions read as require.Equal(...).
func Require(t testing.TB) *require.Assertions {
	return require.New(t)
}
