package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TLATER/mcshader-lsp/internal/linemap"
	"github.com/TLATER/mcshader-lsp/internal/navigation"
)

var definitionFormat string

var definitionCmd = &cobra.Command{
	Use:   "definition <file> <line>:<character>",
	Short: "Find the definition of the symbol under a cursor",
	Long: `Find the definition sites of the symbol at a zero-based cursor position.

Functions are resolved with a whole-file search; variables and parameters are
resolved scope by scope outward from the use site, so the nearest enclosing
declaration wins.

Examples:
  mcshader-lsp definition shaders/composite.fsh 14:8
  mcshader-lsp definition shaders/lib/common.glsl 3:21 --format human`,
	Args: cobra.ExactArgs(2),
	Run:  runDefinition,
}

func init() {
	definitionCmd.Flags().StringVar(&definitionFormat, "format", "json", "Output format (json, yaml, human)")
	rootCmd.AddCommand(definitionCmd)
}

// LocationsResponseCLI contains definition or reference results for CLI output
type LocationsResponseCLI struct {
	File      string                `json:"file" yaml:"file"`
	Cursor    string                `json:"cursor" yaml:"cursor"`
	Found     bool                  `json:"found" yaml:"found"`
	Locations []navigation.Location `json:"locations" yaml:"locations"`
}

func runDefinition(cmd *cobra.Command, args []string) {
	runNavigation(args, definitionFormat, "definition",
		func(engine *navigation.Engine, path string, pos linemap.Position) ([]navigation.Location, bool, error) {
			return engine.FindDefinitions(newContext(), path, pos)
		})
}

// runNavigation is the shared body of the definition and references commands.
func runNavigation(args []string, format, op string,
	search func(*navigation.Engine, string, linemap.Position) ([]navigation.Location, bool, error)) {
	start := time.Now()
	logger := newLogger()

	path := args[0]
	pos, err := parseCursor(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := mustGetEngine(logger)
	checkShaderPath(logger, path)

	locations, found, err := search(engine, path, pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Navigation unavailable: %v\n", err)
		os.Exit(1)
	}
	if locations == nil {
		locations = []navigation.Location{}
	}

	resp := &LocationsResponseCLI{
		File:      path,
		Cursor:    args[1],
		Found:     found,
		Locations: locations,
	}

	output, err := FormatResponse(resp, OutputFormat(format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)

	logger.Debug("navigation query completed",
		"op", op,
		"found", found,
		"locations", len(locations),
		"duration", time.Since(start).Milliseconds(),
	)
}
