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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-mpc/pkg/adapters/logger"
	"github.com/jeremyhahn/go-mpc/pkg/metrics"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

func (a *app) newSplitCmd() *cobra.Command {
	var (
		secret    uint64
		threshold int
		total     int
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Long: `Split an integer secret into n shares over GF(p). Any k of the printed
shares reconstruct the secret with "mpc combine".

Threshold and share count default to sharing.threshold and sharing.shares
from the configuration.`,
		Example: `  mpc split --secret 1234 --threshold 3 --shares 5
  mpc split --secret 42 --prime 18446744073709551557 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Sharing.Threshold
			}
			if !cmd.Flags().Changed("shares") {
				total = a.cfg.Sharing.Shares
			}

			var shares []shamir.Share
			err := a.recorder.Track(metrics.OpSplit, func() error {
				sharer, err := shamir.New(&shamir.Config{
					Secret:    secret,
					Threshold: threshold,
					Shares:    total,
					Prime:     a.prime(),
					Random:    a.random,
					Logger:    a.log,
				})
				if err != nil {
					return err
				}
				shares = sharer.Split()
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to split secret: %w", err)
			}

			a.log.Info("secret split",
				logger.Int("threshold", threshold),
				logger.Int("shares", total))
			return a.printer(cmd).PrintShares(a.prime(), shares)
		},
	}

	cmd.Flags().Uint64Var(&secret, "secret", 0, "secret value to split (must be < prime)")
	cmd.Flags().IntVarP(&threshold, "threshold", "k", 0, "minimum shares needed to reconstruct")
	cmd.Flags().IntVarP(&total, "shares", "n", 0, "total number of shares")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func (a *app) newCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <x:y>...",
		Short: "Reconstruct a secret from shares",
		Long: `Reconstruct the secret from k or more shares by Lagrange interpolation at
zero. Fewer than k shares produce an unrelated value without an error.`,
		Example: `  mpc combine 1:4169 2:5299 3:7641`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := parseShares(args)
			if err != nil {
				return err
			}

			var secret uint64
			err = a.recorder.Track(metrics.OpReconstruct, func() error {
				var err error
				secret, err = shamir.Reconstruct(shares, a.prime())
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to reconstruct secret: %w", err)
			}
			return a.printer(cmd).PrintSecret(a.prime(), secret)
		},
	}
}
