package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/cil-disasm/cil"
	"github.com/wippyai/cil-disasm/disasm"
)

func main() {
	var (
		ilFile      = flag.String("il", "", "Path to a file of raw method-body IL")
		hexMode     = flag.Bool("hex", false, "Treat the input file as hex text instead of binary")
		maxStack    = flag.Int("maxstack", 8, "Max evaluation stack depth to report")
		nLocals     = flag.Int("locals", 0, "Number of synthetic local-variable slots")
		nParams     = flag.Int("params", 0, "Number of synthetic parameters")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with a scrollable viewer")
	)
	flag.Parse()

	if *ilFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: ildasm -il <file.il> [-hex] [-maxstack n] [-locals n] [-params n]")
		fmt.Fprintln(os.Stderr, "       ildasm -il <file.il> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cil.SetLogger(logger)
		disasm.SetLogger(logger)
	}

	listing, err := run(*ilFile, *hexMode, *maxStack, *nLocals, *nParams)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runInteractive(*ilFile, listing); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(listing)
}

func run(ilFile string, hexMode bool, maxStack, nLocals, nParams int) (string, error) {
	data, err := os.ReadFile(ilFile)
	if err != nil {
		return "", err
	}
	if hexMode {
		data, err = decodeHexText(string(data))
		if err != nil {
			return "", fmt.Errorf("decoding hex input: %w", err)
		}
	}

	m := newRawMethod(data, maxStack, nLocals, nParams)
	return disasm.New().Method(m)
}

// decodeHexText accepts whitespace-separated hex text, with or without 0x
// prefixes.
func decodeHexText(s string) ([]byte, error) {
	fields := strings.Fields(s)
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		cleaned = append(cleaned, strings.TrimPrefix(f, "0x"))
	}
	return hex.DecodeString(strings.Join(cleaned, ""))
}
