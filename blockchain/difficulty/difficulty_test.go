// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimitForShift(t *testing.T) {
	tests := []struct {
		shift   uint
		bitLen  int
		compact uint32
	}{
		{20, 236, 0x1e0fffff},
		{16, 240, 0x1f00ffff},
		{1, 255, 0x207fffff},
	}

	for _, test := range tests {
		limit := LimitForShift(test.shift)
		require.Equal(t, test.bitLen, limit.BitLen(), "shift %d", test.shift)

		// Every bit below the top is set.
		plusOne := new(big.Int).Add(limit, bigOne)
		require.Equal(t, test.bitLen+1, plusOne.BitLen())
		require.Equal(t, uint(test.bitLen), plusOne.TrailingZeroBits())

		require.Equal(t, test.compact, BigToCompact(limit),
			"shift %d: got %08x", test.shift, BigToCompact(limit))
		require.True(t, WithinLimit(test.compact, limit))
	}
}

func TestCompactRoundTrip(t *testing.T) {
	for _, bits := range []uint32{0x1d00ffff, 0x1e0fffff, 0x1f00ffff, 0x207fffff} {
		require.Equal(t, bits, BigToCompact(CompactToBig(bits)))
	}
}

func TestWithinLimit(t *testing.T) {
	limit := LimitForShift(16)
	require.True(t, WithinLimit(0x1e0fffff, limit))
	require.False(t, WithinLimit(0x207fffff, limit))
	require.False(t, WithinLimit(0, limit))
}

func TestWorkForTarget(t *testing.T) {
	// The maximum target takes one hash on average.
	require.Equal(t, int64(1), WorkForTarget(MaxTarget()).Int64())
	// >> 16 needs about 2^16 hashes.
	require.Equal(t, int64(1<<16), WorkForTarget(LimitForShift(16)).Int64())
}
