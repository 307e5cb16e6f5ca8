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

// Package metrics provides Prometheus instrumentation for share
// operations. A Recorder registers its collectors on the registry it is
// given, so independent recorders never collide on the default registry.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jeremyhahn/go-mpc/pkg/field"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/mpc"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

const (
	// Namespace is the Prometheus namespace for all metrics
	Namespace = "mpc"

	// Label names
	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelErrorType = "error_type"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpSplit          = "split"
	OpReconstruct    = "reconstruct"
	OpAdd            = "add"
	OpSub            = "sub"
	OpAddConstant    = "add_constant"
	OpScale          = "scale"
	OpMultiplyRaw    = "multiply_raw"
	OpGenerateTriple = "generate_triple"
	OpMultiplyTriple = "multiply_triple"
)

// Recorder records share operations. A nil *Recorder discards everything.
type Recorder struct {
	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder registers the operation metrics on reg.
// Registering twice on the same registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Total number of share operations by type and status",
			},
			[]string{LabelOperation, LabelStatus},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "errors_total",
				Help:      "Total number of failed share operations by type and error type",
			},
			[]string{LabelOperation, LabelErrorType},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of share operations in seconds",
				Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{LabelOperation},
		),
	}
}

// RecordOperation records one operation with its outcome and duration.
func (r *Recorder) RecordOperation(operation string, err error, duration time.Duration) {
	if r == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
		r.errors.WithLabelValues(operation, ErrorType(err)).Inc()
	}
	r.operations.WithLabelValues(operation, status).Inc()
	r.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Track runs fn and records it as operation.
//
// Example:
//
//	err := rec.Track(metrics.OpReconstruct, func() error {
//	    secret, err = shamir.Reconstruct(shares, p)
//	    return err
//	})
func (r *Recorder) Track(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.RecordOperation(operation, err, time.Since(start))
	return err
}

// ErrorType maps an error to a low-cardinality label value.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, shamir.ErrInvalidParameters):
		return "invalid_parameters"
	case errors.Is(err, shamir.ErrSingularInterpolation):
		return "singular_interpolation"
	case errors.Is(err, shamir.ErrNoShares):
		return "no_shares"
	case errors.Is(err, shamir.ErrInvalidShare):
		return "invalid_share"
	case errors.Is(err, mpc.ErrMismatchedShare):
		return "mismatched_share"
	case errors.Is(err, field.ErrDomain):
		return "domain"
	case errors.Is(err, field.ErrInvalidModulus):
		return "invalid_modulus"
	default:
		return "other"
	}
}
