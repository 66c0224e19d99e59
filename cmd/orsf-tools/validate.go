package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
)

func runValidate(args []string) error {
	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags.SetOutput(os.Stdout)
	flags.Usage = func() {
		zap.S().Info("Usage: orsf-tools validate [options] <file>")
		zap.S().Info("")
		zap.S().Info("Options:")
		flags.PrintDefaults()
	}

	strict := flags.Bool("strict", false, "Also check the document against the v1 JSON schema")

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

	var doc *orsf.Document
	if *strict {
		doc, err = orsf.DecodeStrict(raw)
	} else {
		doc, err = orsf.Decode(raw)
	}
	if err != nil {
		return err
	}

	findings := orsf.Validate(doc)
	for _, f := range findings {
		fmt.Println(f.String())
	}

	counts := orsf.CountBySeverity(findings)
	fmt.Printf("%d error(s), %d warning(s), %d info\n",
		counts[orsf.SeverityError], counts[orsf.SeverityWarning], counts[orsf.SeverityInfo])

	if orsf.HasErrors(findings) {
		os.Exit(1)
	}
	return nil
}
