// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package connmgr turns the seeds of a network into peer addresses.
package connmgr

import (
	"fmt"
	"net"
	"time"

	"github.com/NebulousLabs/fastrand"
	"github.com/lightningnetwork/lnd/clock"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/chaincfg"
	"github.com/hybridpos/hposd/hposlog/log"
	"github.com/hybridpos/hposd/wire"
)

const (
	// These constants are used by the DNS seed code to pick a random last
	// seen time.
	secondsIn3Days int32 = 24 * 60 * 60 * 3
	secondsIn4Days int32 = 24 * 60 * 60 * 4
)

// OnSeed is the signature of the callback function which is invoked when
// seeding is successful.
type OnSeed func(addrs []*wire.NetAddress)

// LookupFunc is the signature of the DNS lookup function.
type LookupFunc func(string) ([]net.IP, er.R)

// LookupIP resolves host with the system resolver.
func LookupIP(host string) ([]net.IP, er.R) {
	ips, errr := net.LookupIP(host)
	return ips, er.E(errr)
}

// SeedFromFixed hands a copy of the fixed seeds of the network to seedFn.
// It returns false, without calling seedFn, if the network has none.
func SeedFromFixed(chainParams *chaincfg.Params, seedFn OnSeed) bool {
	if len(chainParams.FixedSeeds) == 0 {
		return false
	}
	addrs := make([]*wire.NetAddress, len(chainParams.FixedSeeds))
	for i, addr := range chainParams.FixedSeeds {
		a := *addr
		addrs[i] = &a
	}
	log.Debugf("Using %d fixed seeds of %s", len(addrs),
		log.Network(chainParams.Name))
	seedFn(addrs)
	return true
}

// dnsSeedHost is the name to query for peers with the services in
// reqServices.
func dnsSeedHost(seed chaincfg.DNSSeed, reqServices wire.ServiceFlag) string {
	if !seed.HasFiltering || reqServices == wire.SFNodeNetwork {
		return seed.Host
	}
	return fmt.Sprintf("x%x.%s", uint64(reqServices), seed.Host)
}

// SeedFromDNS uses DNS seeding to populate the address manager with peers.
// Every seed is queried on its own goroutine, the returned channel is
// closed once all of them are done.
func SeedFromDNS(chainParams *chaincfg.Params, reqServices wire.ServiceFlag,
	clk clock.Clock, lookupFn LookupFunc, seedFn OnSeed) <-chan struct{} {

	done := make(chan struct{})
	pending := make(chan struct{}, len(chainParams.DNSSeeds))
	for _, dnsseed := range chainParams.DNSSeeds {
		go func(host string) {
			defer func() { pending <- struct{}{} }()

			seedpeers, err := lookupFn(host)
			if err != nil {
				log.Infof("DNS discovery failed on seed %s: %v", host, err)
				return
			}
			numPeers := len(seedpeers)

			log.Infof("%d addresses found from DNS seed %s", numPeers, host)

			if numPeers == 0 {
				return
			}
			addresses := make([]*wire.NetAddress, len(seedpeers))
			for i, peer := range seedpeers {
				addresses[i] = wire.NewNetAddressTimestamp(
					// bitcoind seeds with addresses from
					// a time randomly selected between 3
					// and 7 days ago.
					clk.Now().Add(-1*time.Second*time.Duration(secondsIn3Days+
						int32(fastrand.Intn(int(secondsIn4Days))))),
					0, peer, chainParams.DefaultPort)
			}

			seedFn(addresses)
		}(dnsSeedHost(dnsseed, reqServices))
	}
	go func() {
		for range chainParams.DNSSeeds {
			<-pending
		}
		close(done)
	}()
	return done
}

// Seed gives seedFn the first addresses to try on the network: the
// answers of the DNS seeds, or the fixed seeds when there are no DNS seeds.
// The returned channel is closed once seeding is over.
func Seed(chainParams *chaincfg.Params, reqServices wire.ServiceFlag,
	clk clock.Clock, lookupFn LookupFunc, seedFn OnSeed) <-chan struct{} {

	if len(chainParams.DNSSeeds) > 0 {
		return SeedFromDNS(chainParams, reqServices, clk, lookupFn, seedFn)
	}
	if !SeedFromFixed(chainParams, seedFn) {
		log.Warnf("Network %s has no seeds", log.Network(chainParams.Name))
	}
	done := make(chan struct{})
	close(done)
	return done
}
