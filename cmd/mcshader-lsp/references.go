package main

import (
	"github.com/spf13/cobra"

	"github.com/TLATER/mcshader-lsp/internal/linemap"
	"github.com/TLATER/mcshader-lsp/internal/navigation"
)

var referencesFormat string

var referencesCmd = &cobra.Command{
	Use:   "references <file> <line>:<character>",
	Short: "Find all call sites of the function under a cursor",
	Long: `Find every call site of a function, starting from its declarator.

Place the cursor on the function name in its declaration; each call of that
name anywhere in the file is returned.

Examples:
  mcshader-lsp references shaders/composite.fsh 0:5
  mcshader-lsp references shaders/final.fsh 12:10 --format human`,
	Args: cobra.ExactArgs(2),
	Run:  runReferences,
}

func init() {
	referencesCmd.Flags().StringVar(&referencesFormat, "format", "json", "Output format (json, yaml, human)")
	rootCmd.AddCommand(referencesCmd)
}

func runReferences(cmd *cobra.Command, args []string) {
	runNavigation(args, referencesFormat, "references",
		func(engine *navigation.Engine, path string, pos linemap.Position) ([]navigation.Location, bool, error) {
			return engine.FindReferences(newContext(), path, pos)
		})
}
