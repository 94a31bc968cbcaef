// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"strconv"
	"time"

	"github.com/NebulousLabs/fastrand"

	"github.com/hybridpos/hposd/hposlog/log"
	"github.com/hybridpos/hposd/wire"
)

// oneWeek is both the minimum age and the width of the age window given to
// fixed seeds.
const oneWeek = 7 * 24 * time.Hour

// SeedSpec6 is a compact fixed seed: an IPv6 address, or an IPv4 address in
// its IPv4-mapped form, and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// RandSource supplies random numbers for ConvertSeeds.  *math/rand.Rand
// satisfies it.
type RandSource interface {
	// Int63n returns a number in [0, n).
	Int63n(n int64) int64
}

// fastrandSource is the default RandSource.
type fastrandSource struct{}

func (fastrandSource) Int63n(n int64) int64 {
	return int64(fastrand.Uint64n(uint64(n)))
}

// ConvertSeeds turns compact seed records into peer addresses, in order.
//
// Each address gets a last seen time strictly between one and two weeks
// before now.  Peers only try a seed or two before they learn newer
// addresses from the network, which then take precedence over these.
func ConvertSeeds(seeds []SeedSpec6, now time.Time, rnd RandSource) []*wire.NetAddress {
	weekSecs := int64(oneWeek / time.Second)
	addrs := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		// Age in (1 week, 2 weeks), both ends excluded.
		age := oneWeek + time.Duration(1+rnd.Int63n(weekSecs-1))*time.Second
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])
		addr := wire.NewNetAddressTimestamp(now.Add(-age), wire.SFNodeNetwork,
			ip, seed.Port)
		log.Tracef("Fixed seed %s last seen %v", log.IpAddr(net.JoinHostPort(
			ip.String(), strconv.Itoa(int(seed.Port)))), addr.Timestamp)
		addrs = append(addrs, addr)
	}
	return addrs
}

// ipv4Seed builds the IPv4-mapped record for a.b.c.d:port.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec6 {
	return SeedSpec6{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// mainSeeds are the fixed bootstrap peers of the main network.
var mainSeeds = []SeedSpec6{
	ipv4Seed(45, 32, 149, 12, 14354),
	ipv4Seed(45, 77, 58, 104, 14354),
	ipv4Seed(104, 238, 177, 39, 14354),
	ipv4Seed(139, 59, 131, 220, 14354),
	ipv4Seed(207, 148, 7, 191, 14354),
}

// testSeeds are the fixed bootstrap peers of the test network.
var testSeeds = []SeedSpec6{
	ipv4Seed(45, 32, 149, 12, 14355),
	ipv4Seed(139, 59, 131, 220, 14355),
}
