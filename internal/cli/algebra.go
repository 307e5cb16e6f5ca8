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

	"github.com/jeremyhahn/go-mpc/pkg/metrics"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/mpc"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// binaryOp combines two shares held at the same x
type binaryOp func(s1, s2 shamir.Share, p uint64) (shamir.Share, error)

// constantOp combines a share with a public constant
type constantOp func(s shamir.Share, c, p uint64) shamir.Share

func (a *app) newAddCmd() *cobra.Command {
	return a.newBinaryCmd("add", metrics.OpAdd, mpc.AddShares,
		"Add two shares",
		`Add two shares held at the same x. The result is a share of the sum of
the two underlying secrets.`)
}

func (a *app) newSubCmd() *cobra.Command {
	return a.newBinaryCmd("sub", metrics.OpSub, mpc.SubShares,
		"Subtract two shares",
		`Subtract the second share from the first. Both shares must be held at
the same x.`)
}

func (a *app) newMulRawCmd() *cobra.Command {
	return a.newBinaryCmd("mul-raw", metrics.OpMultiplyRaw, mpc.MultiplyRaw,
		"Multiply two shares locally",
		`Multiply two shares held at the same x. The product polynomial has
degree 2(k-1), so reconstructing the product needs 2k-1 such shares. Use
"mpc beaver" for a product that keeps the threshold.`)
}

func (a *app) newBinaryCmd(use, op string, fn binaryOp, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <x:y> <x:y>",
		Short:   short,
		Long:    long,
		Example: fmt.Sprintf("  mpc %s 1:4169 1:812", use),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := parseShares(args)
			if err != nil {
				return err
			}

			var result shamir.Share
			err = a.recorder.Track(op, func() error {
				var err error
				result, err = fn(shares[0], shares[1], a.prime())
				return err
			})
			if err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}
			return a.printer(cmd).PrintShare(a.prime(), result)
		},
	}
}

func (a *app) newAddConstCmd() *cobra.Command {
	return a.newConstantCmd("add-const", metrics.OpAddConstant, mpc.AddPublicConstant,
		"Add a public constant to a share",
		`Add a public constant to a share's y value.

Every holder adds the constant to its own share, so the reconstructed
value is the secret plus the constant.`)
}

func (a *app) newScaleCmd() *cobra.Command {
	return a.newConstantCmd("scale", metrics.OpScale, mpc.ScaleShare,
		"Multiply a share by a public constant",
		`Multiply a share's y value by a public constant. When every holder scales
its share the reconstructed value is the secret times the constant.`)
}

func (a *app) newConstantCmd(use, op string, fn constantOp, short, long string) *cobra.Command {
	var constant uint64

	cmd := &cobra.Command{
		Use:     use + " <x:y>",
		Short:   short,
		Long:    long,
		Example: fmt.Sprintf("  mpc %s --constant 5 1:4169", use),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := parseShares(args)
			if err != nil {
				return err
			}

			var result shamir.Share
			_ = a.recorder.Track(op, func() error {
				result = fn(shares[0], constant, a.prime())
				return nil
			})
			return a.printer(cmd).PrintShare(a.prime(), result)
		},
	}

	cmd.Flags().Uint64VarP(&constant, "constant", "c", 0, "public constant")
	_ = cmd.MarkFlagRequired("constant")

	return cmd
}
