// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"
)

// TargetTimespanMultiplier is the length of the difficulty retarget window
// in blocks.
const TargetTimespanMultiplier = 12

// Regime is the set of block types accepted at some height.
type Regime int

const (
	// RegimeProofOfWork accepts proof of work blocks only.
	RegimeProofOfWork Regime = iota

	// RegimeHybrid accepts both proof of work and proof of stake blocks.
	RegimeHybrid

	// RegimeProofOfStake accepts proof of stake blocks only.
	RegimeProofOfStake
)

func (r Regime) String() string {
	switch r {
	case RegimeProofOfWork:
		return "proof-of-work"
	case RegimeHybrid:
		return "hybrid"
	case RegimeProofOfStake:
		return "proof-of-stake"
	}
	return fmt.Sprintf("Unknown Regime (%d)", int(r))
}

// RegimeAt returns the regime in force for a block at height.
func (p *Params) RegimeAt(height int32) Regime {
	switch {
	case height >= p.LastPowHeight:
		return RegimeProofOfStake
	case height >= p.StartPosHeight:
		return RegimeHybrid
	default:
		return RegimeProofOfWork
	}
}

// AllowsProofOfWork tells whether a proof of work block may be at height.
func (p *Params) AllowsProofOfWork(height int32) bool {
	return p.RegimeAt(height) != RegimeProofOfStake
}

// AllowsProofOfStake tells whether a proof of stake block may be at height.
func (p *Params) AllowsProofOfStake(height int32) bool {
	return p.RegimeAt(height) != RegimeProofOfWork
}

// TargetSpacingAt is the desired time between blocks at height.  Once proof
// of stake blocks are accepted the combined block rate is higher, so the
// spacing drops to PosTargetSpacing.
func (p *Params) TargetSpacingAt(height int32) time.Duration {
	if p.RegimeAt(height) == RegimeProofOfWork {
		return p.PowTargetSpacing
	}
	return p.PosTargetSpacing
}

// TargetTimespanAt is the difficulty retarget window at height.
func (p *Params) TargetTimespanAt(height int32) time.Duration {
	return TargetTimespanMultiplier * p.TargetSpacingAt(height)
}

// seedSpacing sets TargetSpacing and TargetTimespan from the best height
// known when the network is built.
func (p *Params) seedSpacing(bestHeight int32) {
	p.TargetSpacing = p.TargetSpacingAt(bestHeight)
	p.TargetTimespan = p.TargetTimespanAt(bestHeight)
}
