// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
	jsoniter "github.com/json-iterator/go"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/chaincfg"
	"github.com/hybridpos/hposd/hposconfig"
	"github.com/hybridpos/hposd/hposconfig/version"
	"github.com/hybridpos/hposd/hposlog/log"
)

type config struct {
	ConfigFile string  `short:"C" long:"configfile" description:"Read the network from this config file"`
	Heights    []int32 `short:"H" long:"height" description:"Show the schedule at this height, may be repeated"`
	Dump       bool    `long:"dump" description:"Dump every parameter of the network"`
	JSON       bool    `long:"json" description:"Print the profile as JSON"`
	LogFile    string  `long:"logfile" description:"Also write the log to this file"`
	DebugLevel string  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	ShowVer    bool    `short:"V" long:"version" description:"Display version information and exit"`
	hposconfig.NetworkFlags
}

type scheduleJSON struct {
	Height         int32  `json:"height"`
	Regime         string `json:"regime"`
	TargetSpacing  int64  `json:"targetspacing"`
	TargetTimespan int64  `json:"targettimespan"`
}

type profileJSON struct {
	Name               string            `json:"name"`
	Magic              string            `json:"magic"`
	DefaultPort        uint16            `json:"defaultport"`
	RPCPort            uint16            `json:"rpcport"`
	DataDir            string            `json:"datadir"`
	RequireRPCPassword bool              `json:"requirerpcpassword"`
	GenesisHash        string            `json:"genesishash"`
	GenesisMerkleRoot  string            `json:"genesismerkleroot"`
	PowLimitBits       string            `json:"powlimitbits"`
	PosLimitBits       string            `json:"poslimitbits"`
	StartPosHeight     int32             `json:"startposheight"`
	LastPowHeight      int32             `json:"lastpowheight"`
	FixedSeeds         int               `json:"fixedseeds"`
	Base58Prefixes     map[string]string `json:"base58prefixes"`
	Schedule           []scheduleJSON    `json:"schedule"`
}

// writeProfileJSON is writeProfile for machines, durations are in seconds.
func writeProfileJSON(w io.Writer, p *chaincfg.Params, heights []int32) er.R {
	magic := p.Net.Magic()
	out := profileJSON{
		Name:               p.Name,
		Magic:              fmt.Sprintf("%x", magic[:]),
		DefaultPort:        p.DefaultPort,
		RPCPort:            p.RPCPort,
		DataDir:            p.DataDir,
		RequireRPCPassword: p.RequireRPCPassword,
		GenesisHash:        p.GenesisHash.String(),
		GenesisMerkleRoot:  p.GenesisMerkleRoot.String(),
		PowLimitBits:       fmt.Sprintf("%08x", p.PowLimitBits),
		PosLimitBits:       fmt.Sprintf("%08x", p.PosLimitBits),
		StartPosHeight:     p.StartPosHeight,
		LastPowHeight:      p.LastPowHeight,
		FixedSeeds:         len(p.FixedSeeds),
		Base58Prefixes:     make(map[string]string),
	}
	for kind := chaincfg.AddrKind(0); kind < chaincfg.NumAddrKinds; kind++ {
		out.Base58Prefixes[kind.String()] = fmt.Sprintf("%x", p.Base58Prefix(kind))
	}
	for _, h := range heights {
		out.Schedule = append(out.Schedule, scheduleJSON{
			Height:         h,
			Regime:         p.RegimeAt(h).String(),
			TargetSpacing:  int64(p.TargetSpacingAt(h).Seconds()),
			TargetTimespan: int64(p.TargetTimespanAt(h).Seconds()),
		})
	}
	b, errr := jsoniter.MarshalIndent(out, "", "  ")
	if errr != nil {
		return er.E(errr)
	}
	_, errr = fmt.Fprintf(w, "%s\n", b)
	return er.E(errr)
}

// writeProfile prints the summary of a network followed by its schedule
// at each height.
func writeProfile(w io.Writer, p *chaincfg.Params, heights []int32) {
	magic := p.Net.Magic()
	fmt.Fprintf(w, "network:          %s (%s)\n", p.Name, p.Net)
	fmt.Fprintf(w, "magic:            %x\n", magic[:])
	fmt.Fprintf(w, "ports:            p2p %d rpc %d\n", p.DefaultPort, p.RPCPort)
	fmt.Fprintf(w, "data dir:         %q\n", p.DataDir)
	fmt.Fprintf(w, "rpc password:     %v\n", p.RequireRPCPassword)
	fmt.Fprintf(w, "genesis:          %s\n", p.GenesisHash)
	fmt.Fprintf(w, "merkle root:      %s\n", p.GenesisMerkleRoot)
	fmt.Fprintf(w, "pow limit:        %08x\n", p.PowLimitBits)
	fmt.Fprintf(w, "pos limit:        %08x\n", p.PosLimitBits)
	fmt.Fprintf(w, "proof of stake:   from %d, proof of work until %d\n",
		p.StartPosHeight, p.LastPowHeight)
	fmt.Fprintf(w, "fixed seeds:      %d\n", len(p.FixedSeeds))
	for kind := chaincfg.AddrKind(0); kind < chaincfg.NumAddrKinds; kind++ {
		fmt.Fprintf(w, "%-17s %x\n", kind.String()+":", p.Base58Prefix(kind))
	}
	for _, h := range heights {
		fmt.Fprintf(w, "height %d: %s, spacing %v, timespan %v\n", h,
			p.RegimeAt(h), p.TargetSpacingAt(h), p.TargetTimespanAt(h))
	}
}

func run(cfg *config, reg *chaincfg.Registry, w io.Writer) er.R {
	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile, false); err != nil {
			return err
		}
		defer log.CloseLogRotator()
	}
	if cfg.DebugLevel != "" {
		if err := log.SetLogLevels(cfg.DebugLevel); err != nil {
			return err
		}
	}
	netFlags := &cfg.NetworkFlags
	if cfg.ConfigFile != "" {
		fileFlags, err := hposconfig.LoadNetworkFlags(cfg.ConfigFile, nil)
		if err != nil {
			return err
		}
		fileFlags.TestNet = fileFlags.TestNet || netFlags.TestNet
		fileFlags.RegTest = fileFlags.RegTest || netFlags.RegTest
		netFlags = fileFlags
	}
	if err := netFlags.Select(reg); err != nil {
		return err
	}
	p := reg.Active()
	log.Infof("Showing parameters of %s, genesis %s merkle root %s",
		log.Network(p.Name), log.Hash(p.GenesisHash.String()),
		log.Hash(p.GenesisMerkleRoot.String()))

	heights := cfg.Heights
	if len(heights) == 0 {
		heights = []int32{0, p.StartPosHeight, p.LastPowHeight}
	}
	for _, h := range heights {
		log.Debugf("Regime at height %s is %s", log.Height(h), p.RegimeAt(h))
	}
	if cfg.JSON {
		return writeProfileJSON(w, p, heights)
	}
	writeProfile(w, p, heights)
	if cfg.Dump {
		spew.Fdump(w, p)
	}
	return nil
}

func main() {
	version.SetUserAgentName("hposparams")
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, errr := parser.Parse(); errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return
	}
	if cfg.ShowVer {
		fmt.Println(version.String())
		return
	}
	log.WarnIfPrerelease()
	if err := run(&cfg, chaincfg.DefaultRegistry(), os.Stdout); err != nil {
		log.Errorf("hposparams: %s", err.Message())
		os.Exit(1)
	}
}
