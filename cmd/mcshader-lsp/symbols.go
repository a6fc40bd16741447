package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TLATER/mcshader-lsp/internal/navigation"
)

var symbolsFormat string

var symbolsCmd = &cobra.Command{
	Use:   "symbols <file>",
	Short: "List the functions declared in a shader file",
	Args:  cobra.ExactArgs(1),
	Run:   runSymbols,
}

func init() {
	symbolsCmd.Flags().StringVar(&symbolsFormat, "format", "json", "Output format (json, yaml, human)")
	rootCmd.AddCommand(symbolsCmd)
}

// SymbolsResponseCLI contains document symbols for CLI output
type SymbolsResponseCLI struct {
	File    string              `json:"file" yaml:"file"`
	Symbols []navigation.Symbol `json:"symbols" yaml:"symbols"`
}

func runSymbols(cmd *cobra.Command, args []string) {
	logger := newLogger()
	path := args[0]

	engine := mustGetEngine(logger)
	checkShaderPath(logger, path)

	symbols, err := engine.Symbols(newContext(), path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Navigation unavailable: %v\n", err)
		os.Exit(1)
	}
	if symbols == nil {
		symbols = []navigation.Symbol{}
	}

	resp := &SymbolsResponseCLI{File: path, Symbols: symbols}

	output, err := FormatResponse(resp, OutputFormat(symbolsFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
