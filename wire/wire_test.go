// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
)

// mainGenesisTxHex is the serialized main network genesis coinbase.
const mainGenesisTxHex = "010000000039a959010000000000000000000000000000" +
	"0000000000000000000000000000000000ffffffff2900012a2568747470" +
	"3a2f2f7777772e6262632e636f2e756b2f6e6577732f756b2d343131313938" +
	"3730ffffffff0100000000000000000000000000"

// mainGenesisHeaderHex is the serialized main network genesis header.
const mainGenesisHeaderHex = "01000000000000000000000000000000000000000000" +
	"000000000000000000000000000000002a4adc37ca0ff58983449cdae5526c" +
	"ebd5db51a841283876361d7ec3aae7f5040039a959ffff0f1e230d0800"

func hexToBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test hex: %v", err)
	}
	return b
}

func genesisCoinbase(t *testing.T) *MsgTx {
	sigScript := hexToBytes(t, "00012a25687474703a2f2f7777772e6262632e636f"+
		"2e756b2f6e6577732f756b2d3431313139383730")
	tx := NewMsgTx(TxVersion, time.Unix(1504262400, 0))
	tx.AddTxIn(NewTxIn(btcwire.NewOutPoint(&chainhash.Hash{}, MaxPrevOutIndex), sigScript))
	out := NewTxOut(1, []byte{0x51})
	out.SetEmpty()
	tx.AddTxOut(out)
	return tx
}

func TestMsgTxSerialize(t *testing.T) {
	tx := genesisCoinbase(t)
	want := hexToBytes(t, mainGenesisTxHex)

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Serialize\n got: %x\nwant: %x\n%s", buf.Bytes(), want,
			spew.Sdump(tx))
	}
	if tx.SerializeSize() != len(want) {
		t.Errorf("SerializeSize: got %d want %d", tx.SerializeSize(), len(want))
	}
	if !tx.IsCoinBase() {
		t.Errorf("IsCoinBase: genesis coinbase not recognised")
	}
	if !tx.TxOut[0].IsEmpty() {
		t.Errorf("IsEmpty: output not empty after SetEmpty")
	}

	wantHash := "04f5e7aac37e1d3676382841a851dbd5eb6c52e5da9c448389f50fca37dc4a2a"
	if got := tx.TxHash(); got.String() != wantHash {
		t.Errorf("TxHash\n got: %v want: %v", got, wantHash)
	}
}

func TestIsCoinBase(t *testing.T) {
	tx := genesisCoinbase(t)
	tx.TxIn[0].PreviousOutPoint.Index = 0
	if tx.IsCoinBase() {
		t.Errorf("IsCoinBase: spending input reported as coinbase")
	}
	tx.AddTxIn(NewTxIn(btcwire.NewOutPoint(&chainhash.Hash{}, MaxPrevOutIndex), nil))
	if tx.IsCoinBase() {
		t.Errorf("IsCoinBase: two inputs reported as coinbase")
	}
}

func TestBlockHeader(t *testing.T) {
	tx := genesisCoinbase(t)
	block := MsgBlock{}
	block.AddTransaction(tx)
	merkle := block.BuildMerkleRoot()
	block.Header = *NewBlockHeader(1, &chainhash.Hash{}, &merkle,
		time.Unix(1504262400, 0), 0x1e0fffff, 527651)

	want := hexToBytes(t, mainGenesisHeaderHex)
	if got := block.Header.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("Bytes\n got: %x\nwant: %x", got, want)
	}
	if len(want) != BlockHeaderLen {
		t.Fatalf("BlockHeaderLen: got %d want %d", BlockHeaderLen, len(want))
	}

	wantHash := "46ee5b9a6208ffd2a15b5f0f7a5c9dbfe075a435287484615471147e3c097392"
	if got := block.BlockHash(DoubleSha256); got.String() != wantHash {
		t.Errorf("BlockHash\n got: %v want: %v", got, wantHash)
	}

	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	wantBlock := append(append(want, 0x01), hexToBytes(t, mainGenesisTxHex)...)
	if !bytes.Equal(buf.Bytes(), wantBlock) {
		t.Errorf("block Serialize\n got: %x\nwant: %x", buf.Bytes(), wantBlock)
	}
}

func TestCalcMerkleRoot(t *testing.T) {
	a := chainhash.DoubleHashH([]byte("a"))
	b := chainhash.DoubleHashH([]byte("b"))
	c := chainhash.DoubleHashH([]byte("c"))
	join := func(l, r chainhash.Hash) chainhash.Hash {
		return chainhash.DoubleHashH(append(l[:], r[:]...))
	}

	tests := []struct {
		name   string
		hashes []chainhash.Hash
		want   chainhash.Hash
	}{
		{"empty", nil, chainhash.Hash{}},
		{"single", []chainhash.Hash{a}, a},
		{"pair", []chainhash.Hash{a, b}, join(a, b)},
		{"odd", []chainhash.Hash{a, b, c}, join(join(a, b), join(c, c))},
	}

	for _, test := range tests {
		if got := CalcMerkleRoot(test.hashes); got != test.want {
			t.Errorf("%s\n got: %v want: %v", test.name, got, test.want)
		}
	}
}
