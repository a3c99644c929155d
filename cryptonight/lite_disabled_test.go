//go:build cryptonight_nolite

package cryptonight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_NoLite(t *testing.T) {
	table := Table()
	require.Len(t, table, 4)
	for _, e := range table {
		assert.Equal(t, ProfileStandard, e.Profile())
	}

	_, err := Select(ProfileLite, CipherSoftware, KindSingle)
	require.ErrorIs(t, err, ErrProfileUnavailable)

	_, err = NewContext(ProfileLite, 1)
	require.ErrorIs(t, err, ErrProfileUnavailable)
}
