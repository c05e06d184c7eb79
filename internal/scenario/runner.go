package scenario

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/logging"
)

// ErrExpectationFailed is wrapped by StepError when a step's result or error
// differs from what the scenario expects.
var ErrExpectationFailed = errors.New("expectation failed")

// StepError reports the step that stopped a run.
type StepError struct {
	Step int
	Op   Op
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result is the outcome of one step.
type Result struct {
	Step int
	Op   Op
	// Value is the rendered result: the vector state for mutating ops,
	// "true"/"false" for is_set, a decimal number for run, count and len.
	Value string
	// Err holds an expected error returned by the operation.
	Err error
}

// Report is the outcome of a run.
type Report struct {
	Final   bitvec.BitVector
	Results []Result
	// Built is false when construction failed as expected.
	Built bool
}

type options struct {
	logger  *logging.Logger
	metrics MetricsCollector
}

// Option configures Run.
type Option func(*options)

// WithLogger sets the logger used for per-step logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logging.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the collector that receives per-step and per-run metrics.
//
// If nil is passed, metrics are discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// Run builds the scenario's vector and applies its steps in order.
//
// It stops at the first step whose outcome differs from the scenario's
// expectations, returning the partial report and a *StepError. Context
// cancellation is checked between steps.
func Run(ctx context.Context, sc Scenario, optFns ...Option) (rep Report, err error) {
	o := options{
		logger:  logging.NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	log := o.logger

	start := time.Now()
	defer func() {
		o.metrics.RecordRun(len(rep.Results), time.Since(start), err)
	}()

	v, err := build(sc)
	if sc.ExpectError != KindNone {
		if err == nil {
			return Report{}, fmt.Errorf("%w: construction succeeded, want %s", ErrExpectationFailed, sc.ExpectError)
		}
		if !errors.Is(err, sc.ExpectError.Err()) {
			return Report{}, fmt.Errorf("%w: construction failed with %v, want %s", ErrExpectationFailed, err, sc.ExpectError)
		}
		log.LogOp(ctx, "new", nil, "length", sc.Length, "expected_error", err.Error())
		log.LogRun(ctx, 0, 0, "")
		return Report{}, nil
	}
	if err != nil {
		log.LogOp(ctx, "new", err, "length", sc.Length)
		return Report{}, fmt.Errorf("build vector: %w", err)
	}
	log.WithLength(v.Len()).LogOp(ctx, "new", nil, "initial", v.String())

	rep = Report{Built: true, Results: make([]Result, 0, len(sc.Steps))}
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			rep.Final = v
			return rep, err
		}

		stepStart := time.Now()
		res, err := apply(&v, i, st)
		o.metrics.RecordStep(st.Op, time.Since(stepStart), err)
		stepLog := log.WithStep(i)
		if err != nil {
			stepLog.LogOp(ctx, string(st.Op), err, "index", st.Index, "amount", st.Amount)
			rep.Final = v
			log.LogRun(ctx, i+1, 1, v.String())
			return rep, &StepError{Step: i, Op: st.Op, Err: err}
		}
		if res.Err != nil {
			stepLog.LogOp(ctx, string(st.Op), nil, "expected_error", res.Err.Error())
		} else {
			stepLog.LogOp(ctx, string(st.Op), nil, "index", st.Index, "amount", st.Amount, "value", res.Value)
		}
		rep.Results = append(rep.Results, res)
	}

	rep.Final = v
	log.LogRun(ctx, len(sc.Steps), 0, v.String())
	return rep, nil
}

func build(sc Scenario) (bitvec.BitVector, error) {
	if sc.Initial != "" {
		return bitvec.ParseString(sc.Initial)
	}
	return bitvec.New(sc.Length)
}

// apply runs one step. The returned error is non-nil only when the step's
// outcome contradicts its expectations.
func apply(v *bitvec.BitVector, i int, st Step) (Result, error) {
	res := Result{Step: i, Op: st.Op}

	var err error
	switch st.Op {
	case OpSet:
		err = v.Set(st.Index)
		res.Value = v.String()
	case OpUnset:
		err = v.Unset(st.Index)
		res.Value = v.String()
	case OpIsSet:
		var set bool
		set, err = v.IsIndexSet(st.Index)
		res.Value = strconv.FormatBool(set)
	case OpRun:
		var n int
		n, err = v.LongestSetSequenceStartingAt(st.Index)
		res.Value = strconv.Itoa(n)
	case OpShiftLeft:
		v.ShiftLeft(st.Amount)
		res.Value = v.String()
	case OpCount:
		res.Value = strconv.Itoa(v.Count())
	case OpLen:
		res.Value = strconv.Itoa(v.Len())
	default:
		return res, fmt.Errorf("unknown op %q", st.Op)
	}

	if st.ExpectError != KindNone {
		if err == nil {
			return res, fmt.Errorf("%w: succeeded, want %s", ErrExpectationFailed, st.ExpectError)
		}
		if !errors.Is(err, st.ExpectError.Err()) {
			return res, fmt.Errorf("%w: got %v, want %s", ErrExpectationFailed, err, st.ExpectError)
		}
		res.Value = ""
		res.Err = err
		return res, nil
	}
	if err != nil {
		return res, err
	}

	if st.Expect != nil && *st.Expect != res.Value {
		return res, fmt.Errorf("%w: got %q, want %q", ErrExpectationFailed, res.Value, *st.Expect)
	}
	return res, nil
}
