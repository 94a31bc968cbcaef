// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btcutil encodes hashes and keys with the base58 prefixes of a
// network.
package btcutil

import (
	"crypto/sha256"

	"github.com/btcsuite/btcutil/base58"
	//lint:ignore SA1019 ripemd160 may be deprecated but it is not going away.
	"golang.org/x/crypto/ripemd160"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/chaincfg"
)

// Hash160Size is the length of a pubkey or script hash.
const Hash160Size = ripemd160.Size

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sha := sha256.Sum256(buf)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// Err is the error type of this package.
var Err = er.NewErrorType("btcutil.Err")

var (
	// ErrMalformedAddress is returned for strings which are not valid
	// base58check or do not carry a hash.
	ErrMalformedAddress = Err.CodeWithDetail("ErrMalformedAddress",
		"decoded address is of unknown format")

	// ErrAddressPrefix is returned when a payload's version byte is not the
	// one the network uses for that kind of payload.
	ErrAddressPrefix = Err.CodeWithDetail("ErrAddressPrefix",
		"prefix does not belong to the network")

	// ErrMalformedPrivateKey is returned when a WIF string does not decode
	// to a private key.
	ErrMalformedPrivateKey = Err.CodeWithDetail("ErrMalformedPrivateKey",
		"malformed private key")
)

// Address is a pay-to-pubkey-hash or pay-to-script-hash destination on one
// network.
type Address interface {
	// String is the same as EncodeAddress.
	String() string

	// EncodeAddress returns the base58check encoding of the address.
	EncodeAddress() string

	// ScriptAddress returns the hash which a script pays to.
	ScriptAddress() []byte

	// IsForNet tells whether the address belongs to the network.
	IsForNet(*chaincfg.Params) bool
}

type hashAddress struct {
	hash  [Hash160Size]byte
	netID byte
}

func newHashAddress(hash []byte, netID byte) (hashAddress, er.R) {
	var a hashAddress
	if len(hash) != Hash160Size {
		return a, ErrMalformedAddress.New("hash must be 20 bytes", nil)
	}
	copy(a.hash[:], hash)
	a.netID = netID
	return a, nil
}

func (a *hashAddress) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

func (a *hashAddress) ScriptAddress() []byte {
	return append([]byte(nil), a.hash[:]...)
}

// AddressPubKeyHash is an address paying to the hash of a public key.
type AddressPubKeyHash struct {
	hashAddress
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, params *chaincfg.Params) (*AddressPubKeyHash, er.R) {
	a, err := newHashAddress(pkHash, params.PubKeyHashAddrID())
	if err != nil {
		return nil, err
	}
	return &AddressPubKeyHash{a}, nil
}

func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// IsForNet tells whether the address belongs to the network.
func (a *AddressPubKeyHash) IsForNet(params *chaincfg.Params) bool {
	return a.netID == params.PubKeyHashAddrID()
}

// AddressScriptHash is an address paying to the hash of a script.
type AddressScriptHash struct {
	hashAddress
}

// NewAddressScriptHash hashes script and returns the address paying to it.
func NewAddressScriptHash(script []byte, params *chaincfg.Params) (*AddressScriptHash, er.R) {
	return NewAddressScriptHashFromHash(Hash160(script), params)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.
// scriptHash must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, params *chaincfg.Params) (*AddressScriptHash, er.R) {
	a, err := newHashAddress(scriptHash, params.ScriptHashAddrID())
	if err != nil {
		return nil, err
	}
	return &AddressScriptHash{a}, nil
}

func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// IsForNet tells whether the address belongs to the network.
func (a *AddressScriptHash) IsForNet(params *chaincfg.Params) bool {
	return a.netID == params.ScriptHashAddrID()
}

// DecodeAddress decodes the string encoding of an address and checks that
// it belongs to params.
func DecodeAddress(addr string, params *chaincfg.Params) (Address, er.R) {
	decoded, netID, errr := base58.CheckDecode(addr)
	if errr != nil {
		if errr == base58.ErrChecksum {
			return nil, ErrMalformedAddress.New("checksum mismatch", nil)
		}
		return nil, ErrMalformedAddress.Default()
	}
	if len(decoded) != Hash160Size {
		return nil, ErrMalformedAddress.Default()
	}

	switch netID {
	case params.PubKeyHashAddrID():
		return NewAddressPubKeyHash(decoded, params)
	case params.ScriptHashAddrID():
		return NewAddressScriptHashFromHash(decoded, params)
	}
	return nil, ErrAddressPrefix.New(addr+" is not a "+params.Name+" address", nil)
}
