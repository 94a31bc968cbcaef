// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/hybridpos/hposd/blockchain/difficulty"
	"github.com/hybridpos/hposd/wire/protocol"
)

// buildContext carries what the network builders consume from outside the
// package.
type buildContext struct {
	now        time.Time
	rnd        RandSource
	bestHeight int32
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// newMainNetParams builds the main network.  The other networks start
// from a copy of it.
func newMainNetParams(ctx *buildContext) *Params {
	p := &Params{
		Name: "mainnet",
		ID:   MainNet,
		Net:  protocol.MainNet,
		AlertPubKey: mustDecodeHex("04aad5ca3cbe5616262ca3e7a6feef6a54765b96e9056bc6b13" +
			"2a04b94acefeac5d5257fe028e80695c62f7c2f81f85d251a216df3be197653f454852a2d08c631"),
		DefaultPort: 14354,
		RPCPort:     14355,

		PowLimit: difficulty.LimitForShift(20),
		PosLimit: difficulty.LimitForShift(20),

		Genesis: GenesisSpec{
			Timestamp: genesisTimestamp,
			TxTime:    genesisTime,
			BlockTime: genesisTime,
			Bits:      0x1e0fffff,
			Nonce:     527651,
		},
		GenesisHash:       newHashFromStr("0883710680f5dc86ad7d800e34e165e7aeb4d9ca2a8aa99f91b8daea7fbf1133"),
		GenesisMerkleRoot: newHashFromStr("04f5e7aac37e1d3676382841a851dbd5eb6c52e5da9c448389f50fca37dc4a2a"),

		PowTargetSpacing: 50 * time.Second,
		PosTargetSpacing: 30 * time.Second,
		StartPosHeight:   3000,
		LastPowHeight:    50000,

		Base58Prefixes: [NumAddrKinds][]byte{
			PubKeyHashAddr: {58},  // starts with Q
			ScriptHashAddr: {98},  // starts with g
			SecretKey:      {72},  // compressed keys start with B
			ExtPublicKey:   {0x04, 0x77, 0xe1, 0x7a},
			ExtSecretKey:   {0x04, 0x77, 0xdc, 0xf2},
		},

		DataDir:            "",
		RequireRPCPassword: true,
	}
	p.FixedSeeds = ConvertSeeds(mainSeeds, ctx.now, ctx.rnd)
	return finish(p, ctx)
}

// newTestNetParams derives the test network from the main network.  The
// genesis block keeps the main network's coinbase and time but is mined at
// the test network's proof of work limit.
func newTestNetParams(main *Params, ctx *buildContext) *Params {
	p := *main
	p.Name = "testnet"
	p.ID = TestNet
	p.Net = protocol.TestNet
	p.AlertPubKey = mustDecodeHex("04aad5ca3cbe5616262ca3e7a6feef6b54765b96e9056bc6b13" +
		"2a04b94acefeac5d5257fe028e80695c62f7c2f81f85d251a216df3af197653f454852a2d08c631")
	p.DefaultPort = 14355
	p.RPCPort = 24355
	p.DataDir = "testnet"

	p.PowLimit = difficulty.LimitForShift(16)
	p.PosLimit = difficulty.LimitForShift(16)

	p.Genesis.Bits = difficulty.BigToCompact(p.PowLimit)
	p.Genesis.Nonce = 84638
	p.GenesisHash = newHashFromStr("e4ae7c27774ed294f3879f0799a6595aa50a2543cdea8dc2967a502939397a2e")

	p.DNSSeeds = nil
	p.FixedSeeds = ConvertSeeds(testSeeds, ctx.now, ctx.rnd)

	p.Base58Prefixes = [NumAddrKinds][]byte{
		PubKeyHashAddr: {71},  // starts with V
		ScriptHashAddr: {116}, // starts with o
		SecretKey:      {53},  // compressed keys start with 8
		ExtPublicKey:   {0x04, 0x55, 0x6a, 0x7e},
		ExtSecretKey:   {0x04, 0x55, 0xfc, 0x5d},
	}

	// Fixed spacing, proof of stake starts almost immediately.
	p.PowTargetSpacing = 30 * time.Second
	p.PosTargetSpacing = 30 * time.Second
	p.StartPosHeight = 300
	p.LastPowHeight = 5000
	return finish(&p, ctx)
}

// newRegressionNetParams derives the regression test network from the test
// network.  Its proof of work limit is so high that any hash is very likely
// to meet it.
func newRegressionNetParams(test *Params, ctx *buildContext) *Params {
	p := *test
	p.Name = "regtest"
	p.ID = RegressionNet
	p.Net = protocol.RegTest
	p.DefaultPort = 14356
	p.DataDir = "regtest"

	p.PowLimit = difficulty.LimitForShift(1)

	p.Genesis.BlockTime = genesisTime
	p.Genesis.Bits = difficulty.BigToCompact(p.PowLimit)
	p.Genesis.Nonce = 7094
	p.GenesisHash = newHashFromStr("ce0bb70e91b94d98338648d913daf805aa520575de3e499e63b1cf1d9d4c348e")

	// Regtest mode doesn't have any seeds.
	p.DNSSeeds = nil
	p.FixedSeeds = ConvertSeeds(nil, ctx.now, ctx.rnd)

	p.RequireRPCPassword = false
	return finish(&p, ctx)
}

// finish fills in everything derived from the explicit fields and checks
// the result.  It panics if the hard-coded values are inconsistent.
func finish(p *Params, ctx *buildContext) *Params {
	p.PowLimitBits = difficulty.BigToCompact(p.PowLimit)
	p.PosLimitBits = difficulty.BigToCompact(p.PosLimit)
	if err := validatePrefixes(p); err != nil {
		panic(err.String())
	}
	if !difficulty.WithinLimit(p.Genesis.Bits, p.PowLimit) {
		panic(p.Name + ": genesis bits exceed the proof of work limit")
	}
	p.seedSpacing(ctx.bestHeight)
	mustBuildGenesis(p)
	return p
}
