// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync/atomic"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/hposlog/log"
	"github.com/hybridpos/hposd/wire"
	"github.com/hybridpos/hposd/wire/protocol"
)

// RegistryConfig is what a Registry needs from the rest of the process.
// The zero value is usable.
type RegistryConfig struct {
	// BestHeight is the height of the best known block, it only decides
	// Params.TargetSpacing and Params.TargetTimespan.
	BestHeight int32

	// Clock stamps the fixed seeds, nil means the system clock.
	Clock clock.Clock

	// Rand spreads the fixed seed timestamps, nil means fastrand.
	Rand RandSource

	// HeaderHasher, if set, is used to check every genesis block against
	// its hard-coded hash.
	HeaderHasher wire.HeaderHasher
}

// Registry holds the parameters of every network and the one which is
// active.  Before anything is selected the main network is active.
//
// A network can be selected only once for the life of the registry, every
// reader sees either the main network or the selected one.
type Registry struct {
	params   [numNetworks]*Params
	active   atomic.Pointer[Params]
	selected atomic.Bool

	byNet             map[protocol.HposNet]*Params
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
	hdPrivToPubKeyIDs map[[4]byte][]byte
}

// NewRegistry builds the parameters of every network.  The builders panic
// if the hard-coded values disagree with each other, an error is returned
// if they disagree with cfg.HeaderHasher.
func NewRegistry(cfg RegistryConfig) (*Registry, er.R) {
	if cfg.Clock == nil {
		cfg.Clock = clock.NewDefaultClock()
	}
	if cfg.Rand == nil {
		cfg.Rand = fastrandSource{}
	}
	ctx := &buildContext{
		now:        cfg.Clock.Now(),
		rnd:        cfg.Rand,
		bestHeight: cfg.BestHeight,
	}

	r := &Registry{
		byNet:             make(map[protocol.HposNet]*Params),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
	}
	if cfg.HeaderHasher == nil {
		log.Debugf("No header hasher configured, genesis hashes are not checked")
	}
	main := newMainNetParams(ctx)
	test := newTestNetParams(main, ctx)
	regtest := newRegressionNetParams(test, ctx)
	for _, p := range []*Params{main, test, regtest} {
		if cfg.HeaderHasher != nil {
			err := VerifyGenesis(p.GenesisBlock, p.GenesisMerkleRoot,
				p.GenesisHash, cfg.HeaderHasher)
			if err != nil {
				log.Errorf("Genesis block of %s does not check out",
					log.Network(p.Name))
				return nil, err
			}
		}
		if err := r.register(p); err != nil {
			return nil, err
		}
	}
	r.active.Store(main)
	return r, nil
}

// MustNewRegistry is NewRegistry but it panics on error.
func MustNewRegistry(cfg RegistryConfig) *Registry {
	r, err := NewRegistry(cfg)
	if err != nil {
		log.Criticalf("Failed to build network parameters: %s", err.Message())
		panic("failed to build network parameters: " + err.String())
	}
	return r
}

// register adds p to the lookup tables.
func (r *Registry) register(p *Params) er.R {
	if _, ok := r.byNet[p.Net]; ok {
		return ErrDuplicateNet.New(p.Net.String(), nil)
	}
	if r.params[p.ID] != nil {
		return ErrDuplicateNet.New(p.ID.String(), nil)
	}
	r.params[p.ID] = p
	r.byNet[p.Net] = p
	r.pubKeyHashAddrIDs[p.PubKeyHashAddrID()] = struct{}{}
	r.scriptHashAddrIDs[p.ScriptHashAddrID()] = struct{}{}
	pub := p.HDPublicKeyID()
	r.hdPrivToPubKeyIDs[p.HDPrivateKeyID()] = pub[:]
	return nil
}

// Active returns the parameters of the selected network, or of the main
// network if none has been selected yet.
func (r *Registry) Active() *Params {
	return r.active.Load()
}

// Params returns the parameters of network id.  It panics if id is not a
// known network.
func (r *Registry) Params(id NetworkID) *Params {
	if !id.IsValid() {
		panic(fmt.Sprintf("chaincfg: %s", id))
	}
	return r.params[id]
}

// ByNet returns the network which uses the magic net.
func (r *Registry) ByNet(net protocol.HposNet) (*Params, er.R) {
	if p, ok := r.byNet[net]; ok {
		return p, nil
	}
	return nil, ErrUnknownNetwork.New(net.String(), nil)
}

// ByName returns the network called name.
func (r *Registry) ByName(name string) (*Params, er.R) {
	for _, p := range r.params {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrUnknownNetwork.New(name, nil)
}

// Select makes network id the active one.  It panics if id is not a known
// network or if a network was selected before, even the same one.
func (r *Registry) Select(id NetworkID) {
	p := r.Params(id)
	if !r.selected.CompareAndSwap(false, true) {
		panic(ErrAlreadySelected.New(fmt.Sprintf("cannot switch to %s, %s is active",
			id, r.Active().ID), nil).String())
	}
	r.active.Store(p)
	log.Infof("Selected network %s", log.Network(p.Name))
}

// SelectFromRequest selects a network from the testnet and regtest
// switches: regtest wins over testnet, and with neither the main network
// is selected.  Asking for both is an error and selects nothing.
func (r *Registry) SelectFromRequest(wantTest, wantRegression bool) er.R {
	switch {
	case wantTest && wantRegression:
		return ErrConflictingNetworks.Default()
	case wantRegression:
		r.Select(RegressionNet)
	case wantTest:
		r.Select(TestNet)
	default:
		r.Select(MainNet)
	}
	return nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-pubkey-hash address on any network.
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-script-hash address on any network.
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the
// provided id is not registered, the ErrUnknownHDKeyID error will be
// returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, er.R) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID.Default()
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID.Default()
	}

	return append([]byte(nil), pubBytes...), nil
}

// defaultRegistry backs the package level functions.
var defaultRegistry *Registry

func init() {
	defaultRegistry = MustNewRegistry(RegistryConfig{})
}

// DefaultRegistry returns the registry used by the package level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ActiveParams returns the parameters of the network this process runs on.
func ActiveParams() *Params {
	return defaultRegistry.Active()
}

// SelectNetwork selects network id for the whole process.
func SelectNetwork(id NetworkID) {
	defaultRegistry.Select(id)
}

// SelectNetworkFromRequest selects the network for the whole process from
// the testnet and regtest switches.
func SelectNetworkFromRequest(wantTest, wantRegression bool) er.R {
	return defaultRegistry.SelectFromRequest(wantTest, wantRegression)
}
