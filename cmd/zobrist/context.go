package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"chess-zobrist/zobrist"
)

type commandContext struct {
	configFlag *string
	formatFlag *string
	verbose    *bool
	forceTable *bool

	config cliConfig
	logger *slog.Logger
}

func newCommandContext(configFlag, formatFlag *string, verbose, forceTable *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		formatFlag: formatFlag,
		verbose:    verbose,
		forceTable: forceTable,
		config:     defaultConfig(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// init loads configuration and sets up logging before any subcommand runs.
func (c *commandContext) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if *c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := strings.TrimSpace(*c.configFlag)
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if f := strings.TrimSpace(*c.formatFlag); f != "" {
		cfg.Format = strings.ToLower(f)
		if err := cfg.validate(); err != nil {
			return err
		}
	}
	c.config = cfg
	c.logger.Debug("configuration loaded",
		"path", path,
		"backend", cfg.Backend,
		"format", cfg.Format,
		"stream_count", cfg.StreamCount,
		"table_style", cfg.TableStyle,
	)
	return nil
}

// formatKey renders a key in the configured format.
func (c *commandContext) formatKey(k zobrist.Key) string {
	if c.config.Format == formatDec {
		return fmt.Sprintf("%d", uint32(k))
	}
	return fmt.Sprintf("0x%08x", uint32(k))
}

// tableOutput reports whether results written to w should be rendered as a table.
func (c *commandContext) tableOutput(w io.Writer) bool {
	if *c.forceTable {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeRows prints rows as a table or as tab-separated lines.
func (c *commandContext) writeRows(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment) error {
	if c.tableOutput(w) {
		_, err := fmt.Fprintln(w, renderTable(c.config.TableStyle, headers, rows, aligns))
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
