package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"olistcheck/internal/config"
	"olistcheck/internal/logging"
)

type commandContext struct {
	configFlag  *string
	dataDirFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
	closeLog   func() error
}

func newCommandContext(configFlag, dataDirFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		dataDirFlag: dataDirFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.dataDirFlag != nil && strings.TrimSpace(*c.dataDirFlag) != "" {
			if err := cfg.SetDataDir(*c.dataDirFlag, "--data-dir"); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger returns the run logger. Construction failures fall back to a plain
// stderr logger so a bad log_dir never blocks the check itself.
func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, closeLog, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, closeLog, _ = logging.New(logging.Options{Level: "warn"})
			logger.Warn("log setup failed; using stderr", logging.Error(err))
		}
		c.log, _ = logging.WithRunID(logger)
		c.closeLog = closeLog
	})
	return c.log
}

// closeLogger releases the log file, if one was opened. Safe to call when the
// logger was never built and safe to call twice.
func (c *commandContext) closeLogger() error {
	if c.closeLog == nil {
		return nil
	}
	closeLog := c.closeLog
	c.closeLog = nil
	return closeLog()
}

// withLogClose runs fn and then closes the log file, reporting a close failure
// only when fn itself succeeded.
func (c *commandContext) withLogClose(fn func() error) (err error) {
	defer func() {
		if cerr := c.closeLogger(); err == nil {
			err = cerr
		}
	}()
	return fn()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func printLines(out io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
