// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty converts between compact difficulty bits, big integer
// targets and the amount of work a target represents.
package difficulty

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
)

func bn256() *big.Int {
	out := big.NewInt(0)
	out.SetBit(out, 256, 1)
	return out
}

var bigOne = big.NewInt(1)

// MaxTarget is 2^256 - 1, the easiest target a 256 bit hash can be held to.
func MaxTarget() *big.Int {
	return new(big.Int).Sub(bn256(), bigOne)
}

// LimitForShift returns (2^256 - 1) >> shift, the form in which every
// network expresses its easiest allowed target.
func LimitForShift(shift uint) *big.Int {
	return MaxTarget().Rsh(MaxTarget(), shift)
}

// CompactToBig expands compact difficulty bits to the target they encode.
func CompactToBig(compact uint32) *big.Int {
	return blockchain.CompactToBig(compact)
}

// BigToCompact encodes a target as compact difficulty bits.  Precision
// beyond the top 23 bits of mantissa is lost.
func BigToCompact(n *big.Int) uint32 {
	return blockchain.BigToCompact(n)
}

// WorkForTarget calculates an estimated number of hashes which must take place in order to meet
// a particular target
func WorkForTarget(target *big.Int) *big.Int {
	out := bn256()
	tarPlusOne := new(big.Int).Add(target, bigOne)
	out.Div(out, tarPlusOne)
	return out
}

// WithinLimit tells whether compact bits encode a positive target no easier
// than limit.
func WithinLimit(bits uint32, limit *big.Int) bool {
	target := CompactToBig(bits)
	return target.Sign() > 0 && target.Cmp(limit) <= 0
}
