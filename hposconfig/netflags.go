// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hposconfig

import (
	flags "github.com/jessevdk/go-flags"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/chaincfg"
	"github.com/hybridpos/hposd/hposlog/log"
)

// NetworkFlags are the options which choose the network.  They are meant to
// be embedded in the option struct of every command.
type NetworkFlags struct {
	TestNet bool `long:"testnet" description:"Use the test network"`
	RegTest bool `long:"regtest" description:"Use the regression test network"`
}

// Select makes the network the flags ask for the active one in reg.
func (f *NetworkFlags) Select(reg *chaincfg.Registry) er.R {
	if err := reg.SelectFromRequest(f.TestNet, f.RegTest); err != nil {
		return err
	}
	log.Debugf("Network flags testnet=%v regtest=%v", f.TestNet, f.RegTest)
	return nil
}

// ParseNetworkFlags reads the network options out of args, anything else
// is ignored.
func ParseNetworkFlags(args []string) (*NetworkFlags, er.R) {
	cfg := NetworkFlags{}
	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if _, errr := parser.ParseArgs(args); errr != nil {
		return nil, er.E(errr)
	}
	return &cfg, nil
}

// LoadNetworkFlags reads the network options from a config file and then
// from args, so the command line can add to what the file says.  An empty
// filePath skips the file.
func LoadNetworkFlags(filePath string, args []string) (*NetworkFlags, er.R) {
	cfg := NetworkFlags{}
	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if filePath != "" {
		if errr := flags.NewIniParser(parser).ParseFile(filePath); errr != nil {
			return nil, er.E(errr)
		}
	}
	if _, errr := parser.ParseArgs(args); errr != nil {
		return nil, er.E(errr)
	}
	return &cfg, nil
}

// SelectNetworkFromCommandLine selects the network named by --testnet or
// --regtest in args, the main network if neither is present.  Giving both
// is an error and selects nothing.
func SelectNetworkFromCommandLine(reg *chaincfg.Registry, args []string) er.R {
	cfg, err := ParseNetworkFlags(args)
	if err != nil {
		return err
	}
	return cfg.Select(reg)
}
