// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/hybridpos/hposd/wire"
)

// genesisMerkleRoot is shared by every network since they all use the same
// coinbase.
var genesisMerkleRoot = newHashFromStr("04f5e7aac37e1d3676382841a851dbd5eb6c52e5da9c448389f50fca37dc4a2a")

func blockBytes(t *testing.T, b *wire.MsgBlock) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := b.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return buf.Bytes()
}

// TestGenesisBlock ensures the genesis block of every network rebuilds to
// the same bytes and has the expected merkle root and header fields.
func TestGenesisBlock(t *testing.T) {
	reg := newTestRegistry(t, RegistryConfig{})
	tests := []struct {
		id    NetworkID
		bits  uint32
		nonce uint32
	}{
		{MainNet, 0x1e0fffff, 527651},
		{TestNet, 0x1f00ffff, 84638},
		{RegressionNet, 0x207fffff, 7094},
	}

	for i, test := range tests {
		p := reg.Params(test.id)
		block := p.GenesisBlock
		if block.Header.Bits != test.bits || block.Header.Nonce != test.nonce {
			t.Errorf("Genesis header #%d (%s)\n got: %08x/%d want: %08x/%d",
				i, p.Name, block.Header.Bits, block.Header.Nonce,
				test.bits, test.nonce)
		}
		if !block.Header.MerkleRoot.IsEqual(genesisMerkleRoot) {
			t.Errorf("Genesis merkle root #%d (%s)\n got: %v want: %v",
				i, p.Name, block.Header.MerkleRoot, genesisMerkleRoot)
		}
		if block.Header.Timestamp.Unix() != 1504262400 {
			t.Errorf("Genesis time #%d (%s)\n got: %v want: %v",
				i, p.Name, block.Header.Timestamp.Unix(), 1504262400)
		}

		again, err := BuildGenesisBlock(p.Genesis)
		require.Nil(t, err)
		if !bytes.Equal(blockBytes(t, block), blockBytes(t, again)) {
			t.Errorf("Genesis block #%d (%s) is not deterministic\n got: %s want: %s",
				i, p.Name, spew.Sdump(again), spew.Sdump(block))
		}
	}
}

func TestGenesisCoinbase(t *testing.T) {
	block, err := BuildGenesisBlock(DefaultRegistry().Params(MainNet).Genesis)
	require.Nil(t, err)
	require.Len(t, block.Transactions, 1)

	tx := block.Transactions[0]
	require.True(t, tx.IsCoinBase())
	require.Equal(t, int32(1), tx.Version)
	require.Equal(t, uint32(1504262400), tx.Time)
	require.Equal(t, uint32(0), tx.LockTime)
	require.Len(t, tx.TxOut, 1)
	require.True(t, tx.TxOut[0].IsEmpty())

	wantScript := append([]byte{0x00, 0x01, 0x2a, 0x25},
		"http://www.bbc.co.uk/news/uk-41119870"...)
	require.Equal(t, wantScript, tx.TxIn[0].SignatureScript)
	require.Equal(t, wire.MaxTxInSequenceNum, tx.TxIn[0].Sequence)
	require.Equal(t, chainhash.Hash{}, block.Header.PrevBlock)
}

func TestVerifyGenesis(t *testing.T) {
	p := DefaultRegistry().Params(MainNet)
	fake := func([]byte) chainhash.Hash { return *p.GenesisHash }

	// Without a hasher only the merkle root is checked.
	require.Nil(t, VerifyGenesis(p.GenesisBlock, p.GenesisMerkleRoot, p.GenesisHash, nil))
	require.Nil(t, VerifyGenesis(p.GenesisBlock, p.GenesisMerkleRoot, p.GenesisHash, fake))

	err := VerifyGenesis(p.GenesisBlock, p.GenesisMerkleRoot, p.GenesisHash,
		wire.DoubleSha256)
	require.True(t, ErrGenesisHashMismatch.Is(err), "got %v", err)

	err = VerifyGenesis(p.GenesisBlock, &chainhash.Hash{}, p.GenesisHash, nil)
	require.True(t, ErrGenesisMerkleMismatch.Is(err), "got %v", err)

	// A header which does not commit to its transactions.
	tampered, err := BuildGenesisBlock(p.Genesis)
	require.Nil(t, err)
	tampered.Header.MerkleRoot[0] ^= 0xff
	err = VerifyGenesis(tampered, p.GenesisMerkleRoot, p.GenesisHash, fake)
	require.True(t, ErrGenesisMerkleMismatch.Is(err), "got %v", err)

	// A different coinbase text changes the merkle root.
	spec := p.Genesis
	spec.Timestamp = "something else"
	other, err := BuildGenesisBlock(spec)
	require.Nil(t, err)
	err = VerifyGenesis(other, p.GenesisMerkleRoot, p.GenesisHash, nil)
	require.True(t, ErrGenesisMerkleMismatch.Is(err), "got %v", err)
}

func TestMustBuildGenesisPanics(t *testing.T) {
	p := *DefaultRegistry().Params(TestNet)
	p.Genesis.Nonce++
	require.NotPanics(t, func() { mustBuildGenesis(&p) })

	p.GenesisMerkleRoot = &chainhash.Hash{}
	require.Panics(t, func() { mustBuildGenesis(&p) })
}
