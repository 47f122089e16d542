// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/containers"
)

// config holds the persistent flags shared by all subcommands.
type config struct {
	logLevel string
	capacity int
	logTo    io.WriteCloser
}

// newRootCmd returns the root command, logging to `logTo`.
func newRootCmd(logTo io.WriteCloser) *cobra.Command {
	cfg := &config{logTo: logTo}

	root := &cobra.Command{
		Use:   "containers",
		Short: "Exercise array-backed queues, linear sets and Fibonacci sequences.",
		Long: `containers drives the queue, set and fibonacci packages from the command
line. Growth of collection buffers is logged at DEBUG level.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "info", "log level (verbo, debug, trace, info, warn, error, fatal, off)")
	root.PersistentFlags().IntVar(&cfg.capacity, "capacity", containers.DefaultCapacity, "initial buffer capacity of collections")

	root.AddCommand(
		newFibCmd(),
		newQueueCmd(cfg),
		newSetCmd(cfg),
	)
	return root
}

// options returns the collection options described by the flags.
func (c *config) options() ([]containers.Option, error) {
	lvl, err := logging.ToLevel(c.logLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	log := logging.NewLogger("containers", logging.NewWrappedCore(
		lvl, c.logTo, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			TimeKey:    "time",
			LevelKey:   "level",
		}),
	))
	return []containers.Option{containers.WithLogger(log)}, nil
}
