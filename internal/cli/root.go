// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package cli implements atlasctl, a command-line consumer of the Equality
// Atlas API.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomtom215/equalityatlas/internal/client"
	"github.com/tomtom215/equalityatlas/internal/logging"
)

// EnvAPIURL supplies the default for --api-url.
const EnvAPIURL = "ATLAS_API_URL"

const defaultAPIURL = "http://localhost:3000"

// ExitCode is the process status returned by Run.
type ExitCode int

const (
	exitCodeSuccess ExitCode = 0
	exitCodeError   ExitCode = 1
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	apiURL  string
	timeout time.Duration
	rps     float64
	verbose bool
}

func (o *globalOptions) register(fs *pflag.FlagSet) {
	apiURL := os.Getenv(EnvAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	fs.StringVar(&o.apiURL, "api-url", apiURL, "API base URL (env "+EnvAPIURL+")")
	fs.DurationVar(&o.timeout, "timeout", 10*time.Second, "per-request timeout")
	fs.Float64Var(&o.rps, "rps", 5, "maximum requests per second, 0 for unlimited")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging on stderr")
}

func (o *globalOptions) logger(w io.Writer) zerolog.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logging.New(logging.Config{Level: level, Format: "console", Timestamp: true, Output: w})
}

func (o *globalOptions) client(cmd *cobra.Command) (*client.Client, error) {
	return client.New(client.Config{
		BaseURL: o.apiURL,
		Timeout: o.timeout,
		RPS:     o.rps,
		Logger:  o.logger(cmd.ErrOrStderr()),
	})
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "atlasctl",
		Short:         "Query the Equality Atlas gender-equality statistics API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(
		newRankingsCmd(opts),
		newCompareCmd(opts),
		newIndicatorsCmd(opts),
		newHealthCmd(opts),
		newInvalidateCmd(opts),
	)
	return root
}

// Run executes atlasctl with os.Args and reports errors on stderr.
func Run(ctx context.Context) ExitCode {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return exitCodeError
	}
	return exitCodeSuccess
}
