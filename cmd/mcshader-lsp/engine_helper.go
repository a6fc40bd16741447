package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/TLATER/mcshader-lsp/internal/config"
	"github.com/TLATER/mcshader-lsp/internal/linemap"
	"github.com/TLATER/mcshader-lsp/internal/navigation"
	"github.com/TLATER/mcshader-lsp/internal/parser"
	"github.com/TLATER/mcshader-lsp/internal/slogutil"
)

var (
	configOnce   sync.Once
	sharedConfig *config.Config
	configErr    error

	engineOnce   sync.Once
	sharedEngine *navigation.Engine
	engineErr    error
)

// loadSharedConfig loads .mcshader/config.json from the working directory,
// once per process. Load failures fall back to defaults; the error is kept
// so the first logger built from the config can report it.
func loadSharedConfig() *config.Config {
	configOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			configErr = err
			sharedConfig = config.DefaultConfig()
			return
		}

		cfg, err := config.LoadConfig(cwd)
		if err != nil {
			configErr = err
			cfg = config.DefaultConfig()
		}
		sharedConfig = cfg
	})
	return sharedConfig
}

// getEngine returns a shared navigation engine, lazily initialized on first
// use from the shared config.
func getEngine(logger *slog.Logger) (*navigation.Engine, error) {
	engineOnce.Do(func() {
		cfg := loadSharedConfig()
		if err := cfg.Validate(); err != nil {
			engineErr = err
			return
		}

		engine, err := navigation.NewEngine(cfg, parser.New(), logger)
		if err != nil {
			engineErr = fmt.Errorf("failed to create engine: %w", err)
			return
		}
		sharedEngine = engine
	})

	return sharedEngine, engineErr
}

// mustGetEngine returns the shared engine or exits on error.
func mustGetEngine(logger *slog.Logger) *navigation.Engine {
	engine, err := getEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
		os.Exit(1)
	}
	return engine
}

// newContext creates a new context for command execution.
func newContext() context.Context {
	return context.Background()
}

// newLogger creates a logger for command execution from the shared config.
func newLogger() *slog.Logger {
	cfg := loadSharedConfig()
	logger := loggerFor(os.Stderr, cfg, os.Getenv("MCSHADER_LOG_LEVEL"), logLevelFlag)
	if configErr != nil {
		logger.Warn("Failed to load config, using defaults", "error", configErr)
	}
	return logger
}

// loggerFor builds a logger honoring the config's logging section.
// Level precedence: flag > env > config > info; format comes from
// logging.format (human unless json).
func loggerFor(w io.Writer, cfg *config.Config, envLevel, flagLevel string) *slog.Logger {
	level := "info"
	if cfg.Logging.Level != "" {
		level = cfg.Logging.Level
	}
	if envLevel != "" {
		level = envLevel
	}
	if flagLevel != "" {
		level = flagLevel
	}

	if cfg.Logging.Format == "json" {
		return slogutil.NewJSONLogger(w, slogutil.LevelFromString(level))
	}
	return slogutil.NewLogger(w, slogutil.LevelFromString(level))
}

// parseCursor parses a "line:character" argument into a zero-based position.
func parseCursor(arg string) (linemap.Position, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 {
		return linemap.Position{}, fmt.Errorf("invalid cursor %q, want line:character", arg)
	}

	line, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return linemap.Position{}, fmt.Errorf("invalid line %q: %w", parts[0], err)
	}
	character, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return linemap.Position{}, fmt.Errorf("invalid character %q: %w", parts[1], err)
	}

	return linemap.Position{Line: uint32(line), Character: uint32(character)}, nil
}

// checkShaderPath warns when the target file doesn't look like a shader
// source; navigation still runs, the grammar just may not fit.
func checkShaderPath(logger *slog.Logger, path string) {
	extensions := loadSharedConfig().Navigation.FileExtensions

	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range extensions {
		if ext == known {
			return
		}
	}
	logger.Warn("file extension not in configured shader extensions", "path", path, "ext", ext)
}
