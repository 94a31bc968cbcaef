// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/wire"
)

const (
	// genesisTimestamp is embedded in the signature script of every
	// network's genesis coinbase.  Brexit: UK 'must not allow itself to be
	// blackmailed'.
	genesisTimestamp = "http://www.bbc.co.uk/news/uk-41119870"

	// genesisScriptMarker is the small number pushed between the extra
	// nonce and the timestamp.
	genesisScriptMarker = 42

	// genesisBlockVersion is the version of every genesis block.
	genesisBlockVersion = 1
)

// genesisTime is both the coinbase and the block time of the main network
// genesis block, 2017-09-01 10:40:00 UTC.
var genesisTime = time.Unix(1504262400, 0)

// GenesisSpec holds everything a genesis block is built from.  The nonce is
// the result of an offline search, it is reproduced here and never searched
// for at runtime.
type GenesisSpec struct {
	// Timestamp is the human-readable text embedded in the coinbase.
	Timestamp string

	// TxTime is the timestamp of the coinbase transaction.
	TxTime time.Time

	// BlockTime is the timestamp of the block header.
	BlockTime time.Time

	// Bits is the compact difficulty target of the block.
	Bits uint32

	// Nonce is the proof of work nonce of the block.
	Nonce uint32
}

// genesisCoinbaseScript returns OP_0 <marker> <timestamp>.
func genesisCoinbaseScript(timestamp string) ([]byte, er.R) {
	script, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(genesisScriptMarker).
		AddData([]byte(timestamp)).
		Script()
	return script, er.E(err)
}

// BuildGenesisBlock builds the genesis block described by spec.  The block
// has a single coinbase transaction whose only output is empty and can
// therefore never be spent.  Building the same GenesisSpec twice yields
// identical blocks.
func BuildGenesisBlock(spec GenesisSpec) (*wire.MsgBlock, er.R) {
	sigScript, err := genesisCoinbaseScript(spec.Timestamp)
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(wire.TxVersion, spec.TxTime)
	prevOut := btcwire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript))
	out := &wire.TxOut{}
	out.SetEmpty()
	coinbase.AddTxOut(out)

	block := &wire.MsgBlock{}
	block.AddTransaction(coinbase)
	merkleRoot := block.BuildMerkleRoot()
	block.Header = *wire.NewBlockHeader(genesisBlockVersion, &chainhash.Hash{},
		&merkleRoot, spec.BlockTime, spec.Bits, spec.Nonce)
	return block, nil
}

// VerifyGenesis checks a genesis block against its hard-coded merkle root
// and hash.  The merkle root is always recomputed from the transactions.
// The block hash is only checked when hasher is non-nil because the
// proof-of-work hash function is supplied by the consensus engine.
func VerifyGenesis(block *wire.MsgBlock, wantMerkle, wantHash *chainhash.Hash,
	hasher wire.HeaderHasher) er.R {

	merkleRoot := block.BuildMerkleRoot()
	if !merkleRoot.IsEqual(&block.Header.MerkleRoot) {
		return ErrGenesisMerkleMismatch.New(fmt.Sprintf("header commits to %v "+
			"but transactions hash to %v", block.Header.MerkleRoot, merkleRoot), nil)
	}
	if !merkleRoot.IsEqual(wantMerkle) {
		return ErrGenesisMerkleMismatch.New(fmt.Sprintf("got %v want %v",
			merkleRoot, wantMerkle), nil)
	}
	if hasher == nil {
		return nil
	}
	if hash := block.BlockHash(hasher); !hash.IsEqual(wantHash) {
		return ErrGenesisHashMismatch.New(fmt.Sprintf("got %v want %v",
			hash, wantHash), nil)
	}
	return nil
}

// mustBuildGenesis builds the genesis block of p from p.Genesis and checks
// it.  A mismatch means the hard-coded parameters are wrong, which must stop
// the process before it joins a network it disagrees with.
func mustBuildGenesis(p *Params) {
	block, err := BuildGenesisBlock(p.Genesis)
	if err != nil {
		panic(fmt.Sprintf("building %s genesis block: %s", p.Name, err.String()))
	}
	if err := VerifyGenesis(block, p.GenesisMerkleRoot, p.GenesisHash, nil); err != nil {
		panic(fmt.Sprintf("%s genesis block: %s", p.Name, err.String()))
	}
	p.GenesisBlock = block
}
