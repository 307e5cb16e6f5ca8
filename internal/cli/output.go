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
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"

	"github.com/jeremyhahn/go-mpc/pkg/threshold/mpc"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintShares prints a list of shares, one x:y per line in text mode
func (p *Printer) PrintShares(prime uint64, shares []shamir.Share) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"prime":  prime,
			"shares": shares,
		})
	case OutputFormatTable:
		fmt.Fprintf(p.writer, "%-22s %-22s\n", "X", "Y")
		fmt.Fprintln(p.writer, strings.Repeat("-", 45))
		for _, s := range shares {
			fmt.Fprintf(p.writer, "%-22d %-22d\n", s.X, s.Y)
		}
		return nil
	case OutputFormatText:
		for _, s := range shares {
			fmt.Fprintln(p.writer, s.String())
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintShare prints a single share
func (p *Printer) PrintShare(prime uint64, share shamir.Share) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(map[string]interface{}{
			"prime": prime,
			"share": share,
		})
	}
	return p.PrintShares(prime, []shamir.Share{share})
}

// PrintSecret prints a reconstructed value
func (p *Printer) PrintSecret(prime uint64, secret uint64) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"prime":  prime,
			"secret": secret,
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintln(p.writer, secret)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintTriple prints a Beaver triple
func (p *Printer) PrintTriple(prime uint64, t mpc.Triple) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"prime":  prime,
			"triple": t,
		})
	case OutputFormatTable:
		fmt.Fprintf(p.writer, "%-4s %-22s\n", "", "VALUE")
		fmt.Fprintln(p.writer, strings.Repeat("-", 27))
		fmt.Fprintf(p.writer, "%-4s %-22d\n", "a", t.A.Y)
		fmt.Fprintf(p.writer, "%-4s %-22d\n", "b", t.B.Y)
		fmt.Fprintf(p.writer, "%-4s %-22d\n", "c", t.C.Y)
		return nil
	case OutputFormatText:
		fmt.Fprintf(p.writer, "a: %d, b: %d, c: %d\n", t.A.Y, t.B.Y, t.C.Y)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	}
}

// printJSON prints data as indented JSON
func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printMetrics writes counters and histogram totals in a
// name{labels} value layout
func printMetrics(w io.Writer, families []*dto.MetricFamily) error {
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s_count%s %d\n", mf.GetName(), labels, h.GetSampleCount())
				fmt.Fprintf(w, "%s_sum%s %g\n", mf.GetName(), labels, h.GetSampleSum())
			}
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, lp := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
