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
	"io"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-mpc/pkg/threshold/mpc"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// Demo parameters
const (
	demoSecret     = 1234
	demoSecond     = 4321
	demoThreshold  = 3
	demoShares     = 5
	demoPrime      = 7919
	demoPublic     = 100
	demoMultiplier = 5
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through sharing, share arithmetic and Beaver multiplication",
		Long: fmt.Sprintf(`Split the secret %d into %d shares with threshold %d over GF(%d),
reconstruct it, and apply each share operation to share 1.

Binary operations need shares held at the same x, so a second secret %d
is shared the same way and combined with the first at x = 1.

The demo always uses p = %d. Pass --seed for repeatable output.`,
			demoSecret, demoShares, demoThreshold, demoPrime, demoSecond, demoPrime),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

func (a *app) runDemo(w io.Writer) error {
	split := func(secret uint64) ([]shamir.Share, error) {
		sharer, err := shamir.New(&shamir.Config{
			Secret:    secret,
			Threshold: demoThreshold,
			Shares:    demoShares,
			Prime:     demoPrime,
			Random:    a.random,
			Logger:    a.log,
		})
		if err != nil {
			return nil, err
		}
		return sharer.Split(), nil
	}

	shares, err := split(demoSecret)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Generated Shares:")
	for _, s := range shares {
		fmt.Fprintf(w, "Share %d: %d\n", s.X, s.Y)
	}
	fmt.Fprintln(w)

	subset := shares[:demoThreshold]
	secret, err := shamir.Reconstruct(subset, demoPrime)
	if err != nil {
		return err
	}
	xs := make([]uint64, len(subset))
	for i, s := range subset {
		xs[i] = s.X
	}
	fmt.Fprintf(w, "Reconstructed Secret from shares %v: %d\n\n", xs, secret)

	second, err := split(demoSecond)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Share 1 of second secret (%d): %s\n", demoSecond, second[0])

	sum, err := mpc.AddShares(shares[0], second[0], demoPrime)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Sum of Share 1 of both secrets: %s\n", sum)

	fmt.Fprintf(w, "Share 1 + Public Value (%d): %s\n",
		demoPublic, mpc.AddPublicConstant(shares[0], demoPublic, demoPrime))
	fmt.Fprintf(w, "Share 1 * Multiplier (%d): %s\n\n",
		demoMultiplier, mpc.ScaleShare(shares[0], demoMultiplier, demoPrime))

	raw, err := mpc.MultiplyRaw(shares[0], second[0], demoPrime)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Product of Share 1 of both secrets: %s\n", raw)

	triple, err := mpc.GenerateTriple(a.random, demoPrime)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generated Beaver Triple:")
	fmt.Fprintf(w, "a: %d, b: %d, c: %d\n", triple.A.Y, triple.B.Y, triple.C.Y)

	product, err := mpc.MultiplyWithTriple(shares[0], second[0], triple, demoPrime)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Product of Share 1 of both secrets using Beaver Triple: %s\n", product)
	return nil
}
