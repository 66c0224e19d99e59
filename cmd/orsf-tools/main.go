package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "new":
		if err := runNew(os.Args[2:]); err != nil {
			sugar.Fatalf("new: %v", err)
		}
	case "validate":
		if err := runValidate(os.Args[2:]); err != nil {
			sugar.Fatalf("validate: %v", err)
		}
	case "flatten":
		if err := runFlatten(os.Args[2:]); err != nil {
			sugar.Fatalf("flatten: %v", err)
		}
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			sugar.Fatalf("convert: %v", err)
		}
	case "dump":
		if err := runDump(os.Args[2:]); err != nil {
			sugar.Fatalf("dump: %v", err)
		}
	default:
		sugar.Errorf("unknown command %q", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	logger := zap.S()
	logger.Info("Usage: orsf-tools <command> [options]")
	logger.Info("")
	logger.Info("Commands:")
	logger.Info("  new        Create a fresh setup document")
	logger.Info("  validate   Check a setup document and print findings")
	logger.Info("  flatten    Print the flattened field paths of a setup document")
	logger.Info("  convert    Convert a setup document to or from a simulator format")
	logger.Info("  dump       Pretty-print a setup document's in-memory structure")
}
