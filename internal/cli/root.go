// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-mpc.
//
// go-mpc is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package cli implements the mpc command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-mpc/internal/config"
	"github.com/jeremyhahn/go-mpc/pkg/adapters/logger"
	"github.com/jeremyhahn/go-mpc/pkg/crypto/rand"
	"github.com/jeremyhahn/go-mpc/pkg/metrics"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configFile   string
	outputFormat string
	verbose      bool
	prime        uint64
	randomMode   string
	seed         string
	metrics      bool
}

// app carries the state a command needs once the persistent pre-run has
// resolved configuration
type app struct {
	root  *cobra.Command
	flags globalFlags

	cfg      *config.Config
	log      logger.Logger
	random   rand.Resolver
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

// Execute runs the root command
func Execute() error {
	a := newApp()
	if err := a.execute(); err != nil {
		handleError(a, os.Stderr, err)
		return err
	}
	return nil
}

// execute runs the command tree and releases resources even when the
// command fails, so metrics include failed operations
func (a *app) execute() error {
	err := a.root.Execute()
	if terr := a.teardown(a.root.ErrOrStderr()); terr != nil && err == nil {
		err = terr
	}
	return err
}

func newApp() *app {
	a := &app{}

	a.root = &cobra.Command{
		Use:   "mpc",
		Short: "Threshold secret sharing and share arithmetic over a prime field",
		Long: `mpc splits integer secrets into Shamir shares over GF(p), reconstructs
them from any k shares, and computes on shares without reconstructing:

  - add, sub:        share of the sum or difference of two secrets
  - add-const, scale: shift or scale a share by a public constant
  - mul-raw:         local product of two shares (degree doubles)
  - triple, beaver:  Beaver-triple multiplication

Shares are written and read in x:y form.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := a.root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (YAML)")
	pf.StringVarP(&a.flags.outputFormat, "output", "o", "text", "output format (text, json, table)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.Uint64Var(&a.flags.prime, "prime", 0, "prime field modulus (overrides field.prime)")
	pf.StringVar(&a.flags.randomMode, "random", "", "randomness source: auto, software, seeded (overrides random.mode)")
	pf.StringVar(&a.flags.seed, "seed", "", "seed for the seeded randomness source; implies --random seeded")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "print operation metrics to stderr when the command finishes")

	a.root.AddCommand(
		a.newSplitCmd(),
		a.newCombineCmd(),
		a.newAddCmd(),
		a.newSubCmd(),
		a.newAddConstCmd(),
		a.newScaleCmd(),
		a.newMulRawCmd(),
		a.newTripleCmd(),
		a.newBeaverCmd(),
		a.newDemoCmd(),
		a.newConfigCmd(),
		newVersionCmd(a),
	)

	return a
}

// setup loads configuration and builds the logger, randomness source and
// metrics recorder
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flags.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("prime") {
		cfg.Field.Prime = a.flags.prime
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = a.flags.seed
		cfg.Random.Mode = string(rand.ModeSeeded)
	}
	if flags.Changed("random") {
		cfg.Random.Mode = a.flags.randomMode
	}
	if a.flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if a.flags.metrics {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level, _ := logger.ParseLevel(cfg.Logging.Level)
	a.log = logger.NewSlogAdapter(&logger.SlogConfig{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}).With(logger.String("command", cmd.Name()))

	a.random, err = rand.NewResolver(cfg.RandomConfig())
	if err != nil {
		return fmt.Errorf("failed to create randomness source: %w", err)
	}

	a.registry = prometheus.NewRegistry()
	a.recorder = metrics.NewRecorder(a.registry)

	a.log.Debug("configuration resolved",
		logger.Uint64("prime", cfg.Field.Prime),
		logger.String("random", cfg.Random.Mode))
	return nil
}

func (a *app) teardown(w io.Writer) error {
	if a.cfg != nil && a.cfg.Metrics.Enabled {
		families, err := a.registry.Gather()
		if err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
		if err := printMetrics(w, families); err != nil {
			return err
		}
	}
	if a.random != nil {
		return a.random.Close()
	}
	return nil
}

// printer returns a Printer for the command's standard output
func (a *app) printer(cmd *cobra.Command) *Printer {
	return NewPrinter(a.flags.outputFormat, cmd.OutOrStdout())
}

// prime returns the configured field modulus
func (a *app) prime() uint64 {
	return a.cfg.Field.Prime
}

// handleError prints an error in the selected output format
func handleError(a *app, w io.Writer, err error) {
	printer := NewPrinter(a.flags.outputFormat, w)
	_ = printer.PrintError(err) // Error printing to stderr is best-effort
}
