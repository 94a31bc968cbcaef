package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/hybridpos/hposd/btcutil"
	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/chaincfg"
	"github.com/hybridpos/hposd/hposconfig"
	"github.com/hybridpos/hposd/hposconfig/version"
)

type config struct {
	hposconfig.NetworkFlags
}

// otherNetwork finds the network an address which failed to decode on the
// active one belongs to.
func otherNetwork(reg *chaincfg.Registry, addrStr string) *chaincfg.Params {
	for id := chaincfg.MainNet; id.IsValid(); id++ {
		p := reg.Params(id)
		if p == reg.Active() {
			continue
		}
		if _, err := btcutil.DecodeAddress(addrStr, p); err == nil {
			return p
		}
	}
	return nil
}

// check describes addrStr as seen from the active network of reg.
func check(reg *chaincfg.Registry, addrStr string) (string, er.R) {
	params := reg.Active()
	addr, err := btcutil.DecodeAddress(addrStr, params)
	if btcutil.ErrAddressPrefix.Is(err) {
		if other := otherNetwork(reg, addrStr); other != nil {
			return "", btcutil.ErrAddressPrefix.New(fmt.Sprintf(
				"%s is a %s address", addrStr, other.Name), nil)
		}
	}
	if err != nil {
		return "", err
	}

	kind := "pay-to-pubkey-hash"
	if _, ok := addr.(*btcutil.AddressScriptHash); ok {
		kind = "pay-to-script-hash"
	}
	return fmt.Sprintf("%s: %s %s address of hash %x", addrStr, params.Name,
		kind, addr.ScriptAddress()), nil
}

func main() {
	version.SetUserAgentName("checkaddr")
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[--testnet|--regtest] <address>..."
	args, errr := parser.Parse()
	if errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		os.Exit(100)
	}
	if len(args) == 0 {
		parser.WriteHelp(os.Stderr)
		os.Exit(100)
	}
	reg := chaincfg.DefaultRegistry()
	if err := cfg.Select(reg); err != nil {
		fmt.Fprintln(os.Stderr, err.Message())
		os.Exit(100)
	}

	status := 0
	for _, arg := range args {
		desc, err := check(reg, arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Message())
			status = 100
			continue
		}
		fmt.Println(desc)
	}
	os.Exit(status)
}
