package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
)

func runDump(args []string) error {
	flags := flag.NewFlagSet("dump", flag.ContinueOnError)
	flags.SetOutput(os.Stdout)
	flags.Usage = func() {
		zap.S().Info("Usage: orsf-tools dump <file>")
		zap.S().Info("")
		zap.S().Info("Options:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("exactly one input file expected")
	}

	raw, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	doc, err := orsf.Decode(raw)
	if err != nil {
		return err
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	fmt.Print(cfg.Sdump(doc))
	return nil
}
