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

	"github.com/hashicorp/go-multierror"

	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// parseShares parses every argument as an x:y share and reports all
// malformed arguments at once
func parseShares(args []string) ([]shamir.Share, error) {
	var result *multierror.Error
	shares := make([]shamir.Share, 0, len(args))
	for i, arg := range args {
		s, err := shamir.ParseShare(arg)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("argument %d: %w", i+1, err))
			continue
		}
		shares = append(shares, s)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return shares, nil
}
