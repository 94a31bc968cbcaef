// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"
	"fmt"
)

// HposNet represents which network a message belongs to.  It is written on
// the wire as a little endian uint32, so the constants below read as the
// message start bytes in reverse.
type HposNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main network, message start b7 5e 91 8c.
	MainNet HposNet = 0x8c915eb7

	// TestNet represents the public test network, message start 42 8e 1f a0.
	TestNet HposNet = 0xa01f8e42

	// RegTest represents the regression test network, message start
	// 94 c6 44 c8.
	RegTest HposNet = 0xc844c694
)

// hnStrings is a map of networks back to their constant names for pretty
// printing.
var hnStrings = map[HposNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// String returns the HposNet in human-readable form.
func (n HposNet) String() string {
	if s, ok := hnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown HposNet (%d)", uint32(n))
}

// Magic returns the four message start bytes in the order they appear on
// the wire.
func (n HposNet) Magic() [4]byte {
	var m [4]byte
	binary.LittleEndian.PutUint32(m[:], uint32(n))
	return m
}

// NetFromMagic is the inverse of HposNet.Magic.
func NetFromMagic(m [4]byte) HposNet {
	return HposNet(binary.LittleEndian.Uint32(m[:]))
}
