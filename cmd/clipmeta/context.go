package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"clipmeta/internal/clip"
	"clipmeta/internal/config"
	"clipmeta/internal/logging"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type globalFlags struct {
	config   string
	logLevel string
	verbose  int
	json     bool
	output   string
}

type commandContext struct {
	flags *globalFlags
	runID string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags: flags,
		runID: logging.NewRunID(),
	}
}

func (c *commandContext) attachRunID(cmd *cobra.Command) {
	cmd.SetContext(logging.WithRunID(cmd.Context(), c.runID))
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		fallback := config.Default()
		return &fallback
	}
	return cfg
}

// loggerFor builds the invocation logger on first use, writing to the
// command's stderr.
func (c *commandContext) loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.NewFromConfig(c.configValue(), cmd.ErrOrStderr(), c.runID, c.levelOverride())
	})
	return c.logger, c.loggerErr
}

// levelOverride resolves the command line level: an explicit --log-level
// wins over -v counts, and neither leaves the configured level in place.
func (c *commandContext) levelOverride() string {
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		return level
	}
	return levelFromVerbosity(c.flags.verbose)
}

func levelFromVerbosity(count int) string {
	switch {
	case count >= 2:
		return "debug"
	case count == 1:
		return "info"
	default:
		return ""
	}
}

func (c *commandContext) outputFormat() (string, error) {
	if c.flags.json {
		return outputJSON, nil
	}
	format := strings.ToLower(strings.TrimSpace(c.flags.output))
	if format == "" {
		format = c.configValue().Output.Format
	}
	switch format {
	case outputTable, outputJSON, outputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json, or yaml)", format)
	}
}

func (c *commandContext) newParser() *clip.Parser {
	return clip.NewParser(nil, clip.WithWorkers(c.configValue().Scan.Workers))
}

// sourceDir picks the directory argument or falls back to paths.source_dir.
func (c *commandContext) sourceDir(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return config.ExpandPath(strings.TrimSpace(args[0]))
	}
	if dir := c.configValue().Paths.SourceDir; dir != "" {
		return dir, nil
	}
	return "", errors.New("no directory given and paths.source_dir is not set (pass a directory or export CLIPMETA_SOURCE_DIR)")
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
