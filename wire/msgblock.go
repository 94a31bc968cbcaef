// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/hybridpos/hposd/btcutil/er"
)

// MsgBlock is a block header together with its transactions.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// BuildMerkleRoot computes the merkle root over the block's transactions.
func (msg *MsgBlock) BuildMerkleRoot() chainhash.Hash {
	return CalcMerkleRoot(msg.TxHashes())
}

// BlockHash computes the block identifier hash using the given hasher.
func (msg *MsgBlock) BlockHash(hasher HeaderHasher) chainhash.Hash {
	return msg.Header.BlockHash(hasher)
}

// Serialize encodes the header followed by the transactions.  Proof-of-stake
// block signatures are not part of this encoding.
func (msg *MsgBlock) Serialize(w io.Writer) er.R {
	if err := msg.Header.Serialize(w); err != nil {
		return err
	}
	if errr := btcwire.WriteVarInt(w, pver, uint64(len(msg.Transactions))); errr != nil {
		return er.E(errr)
	}
	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// CalcMerkleRoot computes the merkle root of the given transaction hashes.
// Levels with an odd number of entries pair the last entry with itself.
// No hashes at all yield the zero hash.
func CalcMerkleRoot(hashes []chainhash.Hash) chainhash.Hash {
	if len(hashes) == 0 {
		return chainhash.Hash{}
	}
	level := append([]chainhash.Hash(nil), hashes...)
	var pair [chainhash.HashSize * 2]byte
	for len(level) > 1 {
		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			copy(pair[:chainhash.HashSize], level[i][:])
			copy(pair[chainhash.HashSize:], right[:])
			next = append(next, chainhash.DoubleHashH(pair[:]))
		}
		level = next
	}
	return level[0]
}
