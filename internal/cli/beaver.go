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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-mpc/pkg/metrics"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/mpc"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// ErrInconsistentTriple is returned when a supplied triple has c != a*b
var ErrInconsistentTriple = errors.New("cli: beaver triple does not satisfy c = a*b mod p")

func (a *app) newTripleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triple",
		Short: "Generate a Beaver triple",
		Long: `Generate a random Beaver triple (a, b, c) with c = a*b mod p.

A triple masks the operands of exactly one multiplication. Do not reuse it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var t mpc.Triple
			err := a.recorder.Track(metrics.OpGenerateTriple, func() error {
				var err error
				t, err = mpc.GenerateTriple(a.random, a.prime())
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to generate triple: %w", err)
			}
			return a.printer(cmd).PrintTriple(a.prime(), t)
		},
	}
}

func (a *app) newBeaverCmd() *cobra.Command {
	var ta, tb, tc uint64

	cmd := &cobra.Command{
		Use:   "beaver --a A --b B --c C <x:y> <x:y>",
		Short: "Multiply two shares using a Beaver triple",
		Long: `Multiply two shares held at the same x using the triple (a, b, c):

  d = y1 - a, e = y2 - b
  product = c + d*b + e*a + d*e (mod p)

Generate the triple with "mpc triple".`,
		Example: `  mpc beaver --a 10 --b 20 --c 200 1:4 1:6`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := parseShares(args)
			if err != nil {
				return err
			}

			x := shares[0].X
			t := mpc.Triple{
				A: shamir.Share{X: x, Y: ta},
				B: shamir.Share{X: x, Y: tb},
				C: shamir.Share{X: x, Y: tc},
			}
			if !t.Valid(a.prime()) {
				return ErrInconsistentTriple
			}

			var product shamir.Share
			err = a.recorder.Track(metrics.OpMultiplyTriple, func() error {
				var err error
				product, err = mpc.MultiplyWithTriple(shares[0], shares[1], t, a.prime())
				return err
			})
			if err != nil {
				return fmt.Errorf("beaver multiplication failed: %w", err)
			}
			return a.printer(cmd).PrintShare(a.prime(), product)
		},
	}

	cmd.Flags().Uint64Var(&ta, "a", 0, "triple value a")
	cmd.Flags().Uint64Var(&tb, "b", 0, "triple value b")
	cmd.Flags().Uint64Var(&tc, "c", 0, "triple value c = a*b mod p")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	_ = cmd.MarkFlagRequired("c")

	return cmd
}
