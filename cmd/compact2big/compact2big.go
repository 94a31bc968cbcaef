package main

import (
	"fmt"
	"os"
	"strconv"

	flags "github.com/jessevdk/go-flags"

	"github.com/hybridpos/hposd/blockchain/difficulty"
	"github.com/hybridpos/hposd/chaincfg"
	"github.com/hybridpos/hposd/hposconfig"
	"github.com/hybridpos/hposd/hposconfig/version"
)

type config struct {
	hposconfig.NetworkFlags
}

func usage(parser *flags.Parser) {
	fmt.Print("Usage: compact2big [--testnet|--regtest] <target>...\n")
	parser.WriteHelp(os.Stdout)
}

func main() {
	version.SetUserAgentName("compact2big")
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	args, errr := parser.Parse()
	if errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return
	}
	if len(args) < 1 {
		usage(parser)
		return
	}
	if err := cfg.Select(chaincfg.DefaultRegistry()); err != nil {
		fmt.Fprintln(os.Stderr, err.Message())
		os.Exit(1)
	}
	params := chaincfg.ActiveParams()

	for _, arg := range args {
		num, err := strconv.ParseUint(arg, 16, 32)
		if err != nil {
			fmt.Printf("Expected hex number, got [%s]\n", arg)
			continue
		}
		bits := uint32(num)
		bigNum := difficulty.CompactToBig(bits)
		fmt.Printf("%08x target %s work %s\n", bits, bigNum.Text(16),
			difficulty.WorkForTarget(bigNum))
		if !difficulty.WithinLimit(bits, params.PowLimit) {
			fmt.Printf("%08x is easier than the %s proof of work limit %08x\n",
				bits, params.Name, params.PowLimitBits)
		}
	}
}
