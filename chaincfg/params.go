// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/wire"
	"github.com/hybridpos/hposd/wire/protocol"
)

// NetworkID identifies one of the networks this package knows about.  The
// set is closed, there is no way to add a network at runtime.
type NetworkID int

const (
	// MainNet is the production network.
	MainNet NetworkID = iota

	// TestNet is the public test network.
	TestNet

	// RegressionNet is the private regression test network, blocks are
	// trivial to create.
	RegressionNet

	// numNetworks must always come last.
	numNetworks
)

var networkIDStrings = [numNetworks]string{
	MainNet:       "MainNet",
	TestNet:       "TestNet",
	RegressionNet: "RegressionNet",
}

// String returns the NetworkID in human-readable form.
func (id NetworkID) String() string {
	if id.IsValid() {
		return networkIDStrings[id]
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", int(id))
}

// IsValid tells whether id is one of the defined networks.
func (id NetworkID) IsValid() bool {
	return id >= MainNet && id < numNetworks
}

// AddrKind is a kind of base58 encoded payload which is prefixed with a
// network specific version.
type AddrKind int

const (
	// PubKeyHashAddr prefixes pay-to-pubkey-hash addresses.
	PubKeyHashAddr AddrKind = iota

	// ScriptHashAddr prefixes pay-to-script-hash addresses.
	ScriptHashAddr

	// SecretKey prefixes exported private keys.
	SecretKey

	// ExtPublicKey prefixes BIP32 extended public keys.
	ExtPublicKey

	// ExtSecretKey prefixes BIP32 extended private keys.
	ExtSecretKey

	// NumAddrKinds must always come last.
	NumAddrKinds
)

var addrKindStrings = [NumAddrKinds]string{
	PubKeyHashAddr: "PubKeyHashAddr",
	ScriptHashAddr: "ScriptHashAddr",
	SecretKey:      "SecretKey",
	ExtPublicKey:   "ExtPublicKey",
	ExtSecretKey:   "ExtSecretKey",
}

func (k AddrKind) String() string {
	if k >= 0 && k < NumAddrKinds {
		return addrKindStrings[k]
	}
	return fmt.Sprintf("Unknown AddrKind (%d)", int(k))
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params value is built once by the Registry and must not be modified
// afterwards, it is shared by every goroutine that consults it.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// ID is the NetworkID this value was built for.
	ID NetworkID

	// Net defines the magic bytes used to identify the network.
	Net protocol.HposNet

	// AlertPubKey is the uncompressed public key which signs alert
	// messages on this network.
	AlertPubKey []byte

	// DefaultPort is the default peer-to-peer port for the network.
	DefaultPort uint16

	// RPCPort is the default port of the RPC server.
	RPCPort uint16

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the hard-coded bootstrap peers, stamped with a last
	// seen time between one and two weeks before the network was built.
	FixedSeeds []*wire.NetAddress

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimit and PosLimitBits are the proof of stake counterparts of
	// PowLimit and PowLimitBits.
	PosLimit     *big.Int
	PosLimitBits uint32

	// Genesis holds the inputs the genesis block is built from.
	Genesis GenesisSpec

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.  It is hard-coded, not
	// computed, and the registry can check it against a header hasher.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the hard-coded merkle root of the genesis block,
	// checked every time the network is built.
	GenesisMerkleRoot *chainhash.Hash

	// PowTargetSpacing is the desired time between blocks while only
	// proof of work blocks are accepted, PosTargetSpacing once proof of
	// stake blocks are.
	PowTargetSpacing time.Duration
	PosTargetSpacing time.Duration

	// TargetSpacing and TargetTimespan are the values in effect at the
	// best height known when the network was built.  Use TargetSpacingAt
	// and TargetTimespanAt for any other height.
	TargetSpacing  time.Duration
	TargetTimespan time.Duration

	// StartPosHeight is the first height at which proof of stake blocks
	// are accepted, LastPowHeight the first at which proof of work blocks
	// no longer are.
	StartPosHeight int32
	LastPowHeight  int32

	// Base58Prefixes holds the version bytes of each kind of base58
	// encoded payload.  Prefixes are pairwise distinct.
	Base58Prefixes [NumAddrKinds][]byte

	// DataDir is the name of the sub directory where the network keeps
	// its state.  It is empty for the main network.
	DataDir string

	// RequireRPCPassword is false only where an unauthenticated RPC
	// server is acceptable.
	RequireRPCPassword bool
}

// Base58Prefix returns a copy of the prefix used for kind.
func (p *Params) Base58Prefix(kind AddrKind) []byte {
	return append([]byte(nil), p.Base58Prefixes[kind]...)
}

// PubKeyHashAddrID is the first byte of a P2PKH address.
func (p *Params) PubKeyHashAddrID() byte {
	return p.Base58Prefixes[PubKeyHashAddr][0]
}

// ScriptHashAddrID is the first byte of a P2SH address.
func (p *Params) ScriptHashAddrID() byte {
	return p.Base58Prefixes[ScriptHashAddr][0]
}

// PrivateKeyID is the first byte of an exported private key.
func (p *Params) PrivateKeyID() byte {
	return p.Base58Prefixes[SecretKey][0]
}

// HDPublicKeyID is the version of BIP32 extended public keys.
func (p *Params) HDPublicKeyID() [4]byte {
	var id [4]byte
	copy(id[:], p.Base58Prefixes[ExtPublicKey])
	return id
}

// HDPrivateKeyID is the version of BIP32 extended private keys.
func (p *Params) HDPrivateKeyID() [4]byte {
	var id [4]byte
	copy(id[:], p.Base58Prefixes[ExtSecretKey])
	return id
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = er.GenericErrorType.CodeWithDetail("ErrDuplicateNet",
		"duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = er.GenericErrorType.CodeWithDetail("ErrUnknownHDKeyID",
		"unknown hd private extended key bytes")

	// ErrUnknownNetwork is returned by lookups which match no network.
	ErrUnknownNetwork = er.GenericErrorType.CodeWithDetail("ErrUnknownNetwork",
		"unknown network")

	// ErrDuplicatePrefix means two kinds of base58 payload share a prefix
	// on one network, so one could not be told from the other.
	ErrDuplicatePrefix = er.GenericErrorType.CodeWithDetail("ErrDuplicatePrefix",
		"base58 prefixes are not distinct")

	// ErrConflictingNetworks is returned when both the test and the
	// regression test network are requested.
	ErrConflictingNetworks = er.GenericErrorType.CodeWithDetail("ErrConflictingNetworks",
		"the testnet and regtest modes are mutually exclusive")

	// ErrAlreadySelected is the message of the panic raised when a second
	// network is selected.
	ErrAlreadySelected = er.GenericErrorType.CodeWithDetail("ErrAlreadySelected",
		"a network has already been selected")

	// ErrGenesisMerkleMismatch means the rebuilt genesis block does not
	// have the hard-coded merkle root.
	ErrGenesisMerkleMismatch = er.GenericErrorType.CodeWithDetail("ErrGenesisMerkleMismatch",
		"genesis merkle root mismatch")

	// ErrGenesisHashMismatch means the rebuilt genesis block does not hash
	// to the hard-coded genesis hash.
	ErrGenesisHashMismatch = er.GenericErrorType.CodeWithDetail("ErrGenesisHashMismatch",
		"genesis hash mismatch")
)

// validatePrefixes checks that no two kinds of payload share a prefix and
// that none is empty.
func validatePrefixes(p *Params) er.R {
	seen := make(map[string]AddrKind, NumAddrKinds)
	for kind := AddrKind(0); kind < NumAddrKinds; kind++ {
		prefix := p.Base58Prefixes[kind]
		if len(prefix) == 0 {
			return ErrDuplicatePrefix.New(fmt.Sprintf("%s has no prefix for %s",
				p.Name, kind), nil)
		}
		if other, ok := seen[string(prefix)]; ok {
			return ErrDuplicatePrefix.New(fmt.Sprintf("%s uses %x for both %s and %s",
				p.Name, prefix, other, kind), nil)
		}
		seen[string(prefix)] = kind
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes, so it happens on init or never.
		panic(err)
	}
	return hash
}
