package main

import (
	"github.com/spf13/cobra"

	"github.com/TLATER/mcshader-lsp/internal/version"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "mcshader-lsp",
	Short: "Navigation engine for Minecraft shader packs",
	Long: `mcshader-lsp answers go-to-definition and find-references queries for
GLSL shader sources. Each query parses the file fresh and resolves the symbol
under the cursor from the syntax tree alone; no index is built or maintained.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("mcshader-lsp version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default from config)")
}
