// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"net"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
)

// NetAddress is a peer address as exchanged in addr messages.  The
// encoding is the bitcoin one, so the btcd type is used as is.
type NetAddress = btcwire.NetAddress

// ServiceFlag identifies services supported by a peer.
type ServiceFlag = btcwire.ServiceFlag

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork = btcwire.SFNodeNetwork
)

// NewNetAddressTimestamp returns a new NetAddress using the provided
// timestamp, IP, port, and supported services.  The timestamp is rounded to
// single second precision.
func NewNetAddressTimestamp(timestamp time.Time, services ServiceFlag,
	ip net.IP, port uint16) *NetAddress {

	return btcwire.NewNetAddressTimestamp(timestamp, services, ip, port)
}
