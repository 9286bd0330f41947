//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package synth implements SAT-based exact synthesis of single-output
// Boolean chains.
package synth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/markkurossi/esyn/chain"
	"github.com/markkurossi/esyn/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnsupported is returned for specifications the engine can't
// synthesize.
var ErrUnsupported = errors.New("unsupported specification")

// Result specifies the outcome of a synthesis call.
type Result int

// Synthesis results.
const (
	Success Result = iota
	Failure
	Timeout
)

func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case Timeout:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("{Result %d}", r)
	}
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// DefaultMaxSteps is the default step limit of Synthesize.
const DefaultMaxSteps = 16

// Option configures a Synthesizer.
type Option func(s *Synthesizer)

// WithLogger sets the logger for synthesis progress.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Synthesizer) {
		s.log = log
	}
}

// WithMaxSteps sets the step limit of Synthesize.
func WithMaxSteps(maxSteps int) Option {
	return func(s *Synthesizer) {
		s.maxSteps = maxSteps
	}
}

// WithTiming records encoding and solving times into timing.
func WithTiming(timing *Timing) Option {
	return func(s *Synthesizer) {
		s.timing = timing
	}
}

// Synthesizer enumerates the chains of a fixed fanin arity that
// implement a specification. A Synthesizer is not safe for concurrent
// use.
type Synthesizer struct {
	fanin    int
	maxSteps int
	log      logrus.FieldLogger
	timing   *Timing

	spec     *spec.Spec
	numSteps int
	g        *gini.Gini
	enc      *encoding
}

// New creates a new synthesizer for chains of the fanin arity.
func New(fanin int, opts ...Option) (*Synthesizer, error) {
	if fanin < chain.MinFanin || fanin > chain.MaxFanin {
		return nil, errors.Errorf("fanin size %d is not supported", fanin)
	}
	s := &Synthesizer{
		fanin:    fanin,
		maxSteps: DefaultMaxSteps,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Fanin returns the fanin arity of the synthesized chains.
func (s *Synthesizer) Fanin() int {
	return s.fanin
}

// Reset restarts the solution enumeration.
func (s *Synthesizer) Reset() {
	s.spec = nil
	s.numSteps = 0
	s.g = nil
	s.enc = nil
}

// Check tests if the engine can synthesize sp with chains of the
// fanin size. The returned error wraps ErrUnsupported.
func Check(sp *spec.Spec, fanin int) error {
	if err := sp.Validate(); err != nil {
		return errors.Wrap(ErrUnsupported, err.Error())
	}
	if sp.NumOutputs() != 1 {
		return errors.Wrapf(ErrUnsupported, "%d outputs", sp.NumOutputs())
	}
	if sp.NumInputs < fanin {
		return errors.Wrapf(ErrUnsupported, "%d inputs for fanin size %d",
			sp.NumInputs, fanin)
	}
	return nil
}

// NextSolution stores the next chain implementing sp into c. Solutions
// are enumerated in increasing number of steps. The function returns
// Failure when no more solutions with at most maxSteps steps exist, and
// Timeout if ctx is done before the next solution is found. Calling
// NextSolution with a different specification restarts the
// enumeration.
func (s *Synthesizer) NextSolution(ctx context.Context, sp *spec.Spec,
	c *chain.Chain, maxSteps int) (Result, error) {

	if err := Check(sp, s.fanin); err != nil {
		return Failure, err
	}
	if s.spec != sp {
		s.Reset()
		s.spec = sp
	}
	for {
		if s.g == nil {
			if s.numSteps >= maxSteps {
				return Failure, nil
			}
			s.numSteps++
			s.g = gini.New()

			start := time.Now()
			s.enc = encode(s.g, sp.Functions[0], s.fanin, s.numSteps)
			s.log.WithFields(logrus.Fields{
				"steps":   s.numSteps,
				"vars":    s.enc.numVars,
				"clauses": s.enc.numClauses,
				"time":    time.Since(start),
			}).Debug("encoded")
			if s.timing != nil {
				s.timing.Sample(fmt.Sprintf("Encode %d", s.numSteps), []string{
					fmt.Sprintf("%d", s.enc.numVars),
					fmt.Sprintf("%d", s.enc.numClauses),
				})
			}
		}

		start := time.Now()
		res := s.solve(ctx)
		s.log.WithFields(logrus.Fields{
			"steps":  s.numSteps,
			"result": res,
			"time":   time.Since(start),
		}).Debug("solved")
		if s.timing != nil {
			s.timing.Sample(fmt.Sprintf("Solve %d", s.numSteps), nil)
		}

		switch res {
		case satisfiable:
			if err := s.enc.extract(s.g, c); err != nil {
				return Failure, err
			}
			s.enc.block(s.g)
			return Success, nil

		case unsatisfiable:
			s.g = nil
			s.enc = nil

		default:
			return Timeout, nil
		}
	}
}

func (s *Synthesizer) solve(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return s.g.Solve()
	}
	dur := time.Until(deadline)
	if dur <= 0 {
		return 0
	}
	return s.g.Try(dur)
}

// Synthesize stores a minimum-size chain implementing sp into c.
func (s *Synthesizer) Synthesize(ctx context.Context, sp *spec.Spec,
	c *chain.Chain) (Result, error) {

	s.Reset()
	result, err := s.NextSolution(ctx, sp, c, s.maxSteps)
	s.Reset()
	return result, err
}
