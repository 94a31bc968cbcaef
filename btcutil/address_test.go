// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"

	"github.com/hybridpos/hposd/chaincfg"
)

var registry = chaincfg.MustNewRegistry(chaincfg.RegistryConfig{})

func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestHash160(t *testing.T) {
	got := hex.EncodeToString(Hash160(nil))
	want := "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"
	if got != want {
		t.Errorf("Hash160\n got: %s want: %s", got, want)
	}
}

func TestAddresses(t *testing.T) {
	main := registry.Params(chaincfg.MainNet)
	testNet := registry.Params(chaincfg.TestNet)
	regtest := registry.Params(chaincfg.RegressionNet)

	tests := []struct {
		name   string
		params *chaincfg.Params
		p2sh   bool
		encode string
	}{
		{"main p2pkh", main, false, "QLc1KKsLWovHm79aV22uihS3bwgECPid8z"},
		{"main p2sh", main, true, "gS88hfnrv2TLUSj3ToMf7iKWn7yxcnRc8G"},
		{"test p2pkh", testNet, false, "VZzr7jk5k9wgPjxhoUN42KyGnW2VLihkgc"},
		{"test p2sh", testNet, true, "ogCzRdA3hGo7CFEbuMMPqyDg7CcwQm7Geq"},
		{"regtest p2pkh", regtest, false, "VZzr7jk5k9wgPjxhoUN42KyGnW2VLihkgc"},
	}

	for i, test := range tests {
		var addr Address
		if test.p2sh {
			a, err := NewAddressScriptHashFromHash(seqBytes(20), test.params)
			require.Nil(t, err)
			addr = a
		} else {
			a, err := NewAddressPubKeyHash(seqBytes(20), test.params)
			require.Nil(t, err)
			addr = a
		}
		if got := addr.EncodeAddress(); got != test.encode {
			t.Errorf("EncodeAddress #%d (%s)\n got: %s want: %s",
				i, test.name, got, test.encode)
			continue
		}
		require.Equal(t, test.encode, addr.String())
		require.True(t, addr.IsForNet(test.params))
		require.Equal(t, seqBytes(20), addr.ScriptAddress())

		decoded, err := DecodeAddress(test.encode, test.params)
		if err != nil {
			t.Errorf("DecodeAddress #%d (%s): %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(decoded.ScriptAddress(), seqBytes(20)) ||
			decoded.EncodeAddress() != test.encode {

			t.Errorf("DecodeAddress #%d (%s)\n got: %s want: %s",
				i, test.name, decoded, test.encode)
		}
		_, isP2SH := decoded.(*AddressScriptHash)
		require.Equal(t, test.p2sh, isP2SH, "#%d", i)
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	main := registry.Params(chaincfg.MainNet)
	testNet := registry.Params(chaincfg.TestNet)

	// A test network address on the main network.
	_, err := DecodeAddress("VZzr7jk5k9wgPjxhoUN42KyGnW2VLihkgc", main)
	require.True(t, ErrAddressPrefix.Is(err), "got %v", err)
	_, err = DecodeAddress("QLc1KKsLWovHm79aV22uihS3bwgECPid8z", testNet)
	require.True(t, ErrAddressPrefix.Is(err), "got %v", err)

	// Broken checksum, bad alphabet and a key instead of a hash.
	for _, s := range []string{
		"QLc1KKsLWovHm79aV22uihS3bwgECPid8a",
		"0Lc1KKsLWovHm79aV22uihS3bwgECPid8z",
		"BekQcN7udcnQvKMLYBpabZsgksniJh3DigZnxzSZEpuVWo4QWouC",
	} {
		_, err = DecodeAddress(s, main)
		require.True(t, ErrMalformedAddress.Is(err), "%s: got %v", s, err)
	}

	_, err = NewAddressPubKeyHash(seqBytes(19), main)
	require.True(t, ErrMalformedAddress.Is(err))
	_, err = NewAddressScriptHashFromHash(seqBytes(21), main)
	require.True(t, ErrMalformedAddress.Is(err))

	p2sh, err := NewAddressScriptHash([]byte{0x51}, main)
	require.Nil(t, err)
	require.Equal(t, "gn1GgWDd5XAJUG1EyttsFt19wik4dB4AZ3", p2sh.EncodeAddress())
	require.False(t, p2sh.IsForNet(testNet))
}

func TestWIF(t *testing.T) {
	main := registry.Params(chaincfg.MainNet)
	testNet := registry.Params(chaincfg.TestNet)
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), seqBytes(32))

	tests := []struct {
		name     string
		params   *chaincfg.Params
		compress bool
		wif      string
		address  string
	}{
		{"main compressed", main, true,
			"BekQcN7udcnQvKMLYBpabZsgksniJh3DigZnxzSZEpuVWo4QWouC",
			"QSAaXqmjqUFCLWVAfYsTbcyf8GZSXnxJVG"},
		{"main uncompressed", main, false,
			"3QxboXcYrz3ay2tjVN2ibZpjYEmo4ZBUMKUpa5QTnj7ugS36NSV",
			"QbkeBcvLFd1B5KTA9yDxVwPo2jSe6Byxpz"},
		{"test compressed", testNet, true,
			"8qjRkJGpJhNoQV6k2kKcUG5S2cyKSjtQdHjKLMrkujayAWJBjZte",
			"VfZRLFeV4pGay9JHz1CbuFWtJpuhjzmR1h"},
	}

	for i, test := range tests {
		w := NewWIF(priv, test.params, test.compress)
		if got := w.String(); got != test.wif {
			t.Errorf("WIF #%d (%s)\n got: %s want: %s", i, test.name, got, test.wif)
		}
		addr, err := w.Address(test.params)
		require.Nil(t, err)
		if got := addr.EncodeAddress(); got != test.address {
			t.Errorf("WIF address #%d (%s)\n got: %s want: %s",
				i, test.name, got, test.address)
		}

		decoded, err := DecodeWIF(test.wif, test.params)
		require.Nil(t, err, "#%d", i)
		require.Equal(t, test.compress, decoded.CompressPubKey)
		require.Equal(t, priv.Serialize(), decoded.PrivKey.Serialize())
		require.True(t, decoded.IsForNet(test.params))
	}

	_, err := DecodeWIF("8qjRkJGpJhNoQV6k2kKcUG5S2cyKSjtQdHjKLMrkujayAWJBjZte", main)
	require.True(t, ErrAddressPrefix.Is(err), "got %v", err)
	_, err = DecodeWIF("8qjRkJGpJhNoQV6k2kKcUG5S2cyKSjtQdHjKLMrkujayAWJBjZtf", testNet)
	require.True(t, ErrMalformedPrivateKey.Is(err), "got %v", err)
}
