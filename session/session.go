//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package session implements the synthesis command context: the
// specification and network stores and the commands operating on them.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/markkurossi/esyn/chain"
	"github.com/markkurossi/esyn/format"
	"github.com/markkurossi/esyn/network"
	"github.com/markkurossi/esyn/spec"
	"github.com/markkurossi/esyn/synth"
	"github.com/markkurossi/esyn/tt"
	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Errors returned when a command needs a value and the store is empty.
var (
	ErrNoSpec    = errors.New("specification not found")
	ErrNoNetwork = errors.New("network not found")
)

// ErrTimeout is returned when the session timeout expires before a
// solution enumeration completes.
var ErrTimeout = errors.New("synthesis timeout")

// Params specify session parameters.
type Params struct {
	// Timeout limits the time of one synthesis command. Zero means no
	// limit.
	Timeout time.Duration

	// MaxSteps limits the chain size of the synthesize command.
	MaxSteps int

	// Profile enables the synthesis profiling report.
	Profile bool
}

// NewParams returns new session params, initialized with the default
// values.
func NewParams() *Params {
	return &Params{
		MaxSteps: synth.DefaultMaxSteps,
	}
}

// Session holds the state of one command session. The session owns the
// truth tables its specifications refer to.
type Session struct {
	Params   *Params
	Out      io.Writer
	Log      logrus.FieldLogger
	Specs    Store[*spec.Spec]
	Networks Store[*network.Network]

	functions []*tt.Dynamic
}

// New creates a new session writing command output to out.
func New(params *Params, out io.Writer, log logrus.FieldLogger) *Session {
	if params == nil {
		params = NewParams()
	}
	return &Session{
		Params: params,
		Out:    out,
		Log:    log,
	}
}

// Functions returns the truth tables loaded into the session.
func (s *Session) Functions() []*tt.Dynamic {
	return s.functions
}

func (s *Session) withTimeout(ctx context.Context) (context.Context,
	context.CancelFunc) {
	if s.Params.Timeout > 0 {
		return context.WithTimeout(ctx, s.Params.Timeout)
	}
	return context.WithCancel(ctx)
}

// addSpec creates a single-output specification for f and stores both
// into the session.
func (s *Session) addSpec(f *tt.Dynamic) *spec.Spec {
	s.functions = append(s.functions, f)
	sp := spec.ForFunction(f)
	s.Specs.Extend(sp)
	return sp
}

// LoadSpec creates a new specification from the truth table string and
// makes it current.
func (s *Session) LoadSpec(truthTable string, binary bool) (*spec.Spec,
	error) {
	f, err := spec.Load(truthTable, binary)
	if err != nil {
		return nil, err
	}
	sp := s.addSpec(f)
	s.Log.WithField("spec", sp.Describe()).Debug("specification loaded")
	return sp, nil
}

// Synthesize synthesizes a minimum chain of the fanin size for the
// current specification. On success, the normalized network is added
// to the network store. The result is printed to the session output.
func (s *Session) Synthesize(ctx context.Context, fanin int) (synth.Result,
	error) {

	sp, ok := s.Specs.Current()
	if !ok {
		return synth.Failure, ErrNoSpec
	}
	if fanin < chain.MinFanin || fanin > chain.MaxFanin {
		return synth.Failure, errors.Errorf("fanin size %d is not supported",
			fanin)
	}

	var timing *synth.Timing
	if s.Params.Profile {
		timing = synth.NewTiming()
	}
	syn, err := synth.New(fanin,
		synth.WithLogger(s.Log),
		synth.WithMaxSteps(s.Params.MaxSteps),
		synth.WithTiming(timing))
	if err != nil {
		return synth.Failure, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c := new(chain.Chain)
	result, err := syn.Synthesize(ctx, sp, c)
	if err != nil {
		return result, err
	}
	if result == synth.Success {
		ntk, err := network.Normalize(c)
		if err != nil {
			return synth.Failure, err
		}
		s.Networks.Extend(ntk)
	}
	fmt.Fprintf(s.Out, "%s\n", result)
	if timing != nil {
		timing.Print(s.Out)
	}
	return result, nil
}

// Enumerate writes every chain of at most gates steps that implements
// sp into out in the IWLS 2018 format. Each chain is followed by a
// newline. The function returns the number of chains written. If the
// session timeout expires, the function returns the chains written so
// far and ErrTimeout.
func (s *Session) Enumerate(ctx context.Context, sp *spec.Spec, fanin,
	gates int, out io.Writer) (int, error) {

	if fanin < format.IWLSMinFanin || fanin > format.IWLSMaxFanin {
		return 0, errors.Wrapf(format.ErrUnsupportedFanin, "fanin size %d",
			fanin)
	}
	syn, err := synth.New(fanin, synth.WithLogger(s.Log))
	if err != nil {
		return 0, err
	}
	syn.Reset()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var count int
	c := new(chain.Chain)
	for {
		result, err := syn.NextSolution(ctx, sp, c, gates)
		if err != nil {
			return count, err
		}
		if result == synth.Timeout {
			return count, errors.Wrapf(ErrTimeout, "%d solutions", count)
		}
		if result != synth.Success {
			s.Log.WithFields(logrus.Fields{
				"result":    result,
				"solutions": count,
			}).Debug("enumeration done")
			return count, nil
		}
		if c.NumNodes() > gates {
			return count, nil
		}
		if !c.SatisfiesSpec(sp) {
			s.Log.WithField("chain", c).Warn("solution does not satisfy spec")
			continue
		}
		if err := format.WriteIWLS(out, c); err != nil {
			return count, err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return count, err
		}
		count++
	}
}

// IWLS2018 synthesizes all chains for the hex truth table with the
// fanin size and gate count and writes them into the contest solution
// file in dir. The function returns the file name and the number of
// solutions. Unsupported benchmarks are rejected before the file is
// created. On timeout, the file holds the solutions found so far and
// the returned error wraps ErrTimeout.
func (s *Session) IWLS2018(ctx context.Context, truthTable string, fanin,
	gates int, dir string) (string, int, error) {

	if fanin < format.IWLSMinFanin || fanin > format.IWLSMaxFanin {
		return "", 0, errors.Wrapf(format.ErrUnsupportedFanin,
			"fanin size %d", fanin)
	}
	f, err := spec.Load(truthTable, false)
	if err != nil {
		return "", 0, err
	}
	sp := spec.ForFunction(f)
	if err := synth.Check(sp, fanin); err != nil {
		return "", 0, err
	}

	name := filepath.Join(dir, format.IWLSFileName(truthTable, fanin, gates))
	file, err := os.Create(name)
	if err != nil {
		return "", 0, err
	}
	count, err := s.Enumerate(ctx, sp, fanin, gates, file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, ErrTimeout) {
		s.Log.WithFields(logrus.Fields{
			"file":      name,
			"solutions": count,
		}).Warn("solution enumeration timed out")
		return name, count, errors.Wrapf(err, "%s", name)
	}
	if err != nil {
		os.Remove(name)
		return "", count, errors.Wrapf(err, "%s", name)
	}
	s.Log.WithFields(logrus.Fields{
		"file":      name,
		"solutions": count,
	}).Info("solutions written")
	return name, count, nil
}

// FIWLS2018 runs IWLS2018 for every benchmark of the benchmark file
// and prints a summary table to the session output.
func (s *Session) FIWLS2018(ctx context.Context, benchmarks, dir string) error {
	f, err := os.Open(benchmarks)
	if err != nil {
		return err
	}
	list, err := format.ReadBenchmarks(f)
	f.Close()
	if err != nil {
		return errors.Wrapf(err, "%s", benchmarks)
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Function").SetAlign(tabulate.ML)
	tab.Header("Fanin").SetAlign(tabulate.MR)
	tab.Header("Gates").SetAlign(tabulate.MR)
	tab.Header("Solutions").SetAlign(tabulate.MR)
	tab.Header("Result").SetAlign(tabulate.ML)
	tab.Header("File").SetAlign(tabulate.ML)

	for _, b := range list {
		result := synth.Success
		name, count, err := s.IWLS2018(ctx, b.TruthTable, b.Fanin, b.Gates,
			dir)
		switch {
		case errors.Is(err, format.ErrUnsupportedFanin),
			errors.Is(err, synth.ErrUnsupported):
			s.Log.WithField("benchmark", b.TruthTable).Warn(err)
			continue
		case errors.Is(err, ErrTimeout):
			result = synth.Timeout
		case err != nil:
			return err
		}
		row := tab.Row()
		row.Column(b.TruthTable)
		row.Column(fmt.Sprintf("%d", b.Fanin))
		row.Column(fmt.Sprintf("%d", b.Gates))
		row.Column(fmt.Sprintf("%d", count))
		row.Column(result.String())
		row.Column(filepath.Base(name))
	}
	tab.Print(s.Out)
	return nil
}
