// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/chaincfg"
)

// compressMagic is the byte following the key in the payload of a WIF
// whose public key is serialized compressed.
const compressMagic byte = 0x01

// WIF is a private key in wallet import format, tied to one network.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *btcec.PrivateKey

	// CompressPubKey selects whether the address of this key is derived
	// from the compressed or the uncompressed public key.
	CompressPubKey bool

	netID byte
}

// NewWIF creates a new WIF for privKey on the network of params.
func NewWIF(privKey *btcec.PrivateKey, params *chaincfg.Params, compress bool) *WIF {
	return &WIF{privKey, compress, params.PrivateKeyID()}
}

// DecodeWIF decodes a WIF string and checks that it belongs to params.
func DecodeWIF(wif string, params *chaincfg.Params) (*WIF, er.R) {
	decoded, netID, errr := base58.CheckDecode(wif)
	if errr != nil {
		return nil, ErrMalformedPrivateKey.New("", er.E(errr))
	}
	if netID != params.PrivateKeyID() {
		return nil, ErrAddressPrefix.New("not a "+params.Name+" private key", nil)
	}

	var compress bool
	switch {
	case len(decoded) == btcec.PrivKeyBytesLen+1 && decoded[btcec.PrivKeyBytesLen] == compressMagic:
		compress = true
	case len(decoded) == btcec.PrivKeyBytesLen:
	default:
		return nil, ErrMalformedPrivateKey.Default()
	}
	privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), decoded[:btcec.PrivKeyBytesLen])
	return &WIF{privKey, compress, netID}, nil
}

// IsForNet tells whether the key belongs to the network.
func (w *WIF) IsForNet(params *chaincfg.Params) bool {
	return w.netID == params.PrivateKeyID()
}

// String returns the base58check encoding of the key.
func (w *WIF) String() string {
	payload := make([]byte, 0, btcec.PrivKeyBytesLen+1)
	payload = paddedAppend(btcec.PrivKeyBytesLen, payload, w.PrivKey.D.Bytes())
	if w.CompressPubKey {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload, w.netID)
}

// SerializePubKey serializes the public key of the WIF the way its
// CompressPubKey field says.
func (w *WIF) SerializePubKey() []byte {
	pk := (*btcec.PublicKey)(&w.PrivKey.PublicKey)
	if w.CompressPubKey {
		return pk.SerializeCompressed()
	}
	return pk.SerializeUncompressed()
}

// Address returns the pay-to-pubkey-hash address of the key on params.
func (w *WIF) Address(params *chaincfg.Params) (*AddressPubKeyHash, er.R) {
	return NewAddressPubKeyHash(Hash160(w.SerializePubKey()), params)
}

// paddedAppend appends the src byte slice to dst, returning the new slice.
// If the length of the source is smaller than the passed size, leading zero
// bytes are appended to the dst slice before appending src.
func paddedAppend(size uint, dst, src []byte) []byte {
	for i := 0; i < int(size)-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}
