//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package format

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Benchmark specifies one IWLS 2018 contest problem: the function
// truth table in hex, the operator fanin size, and the gate count.
type Benchmark struct {
	TruthTable string
	Fanin      int
	Gates      int
}

// FileName returns the solution file name of the benchmark.
func (b Benchmark) FileName() string {
	return IWLSFileName(b.TruthTable, b.Fanin, b.Gates)
}

// ReadBenchmarks reads a benchmark file. Each line holds a truth table,
// a fanin size, and a gate count separated by whitespace. Lines
// starting with '#' and lines with fewer than three fields are
// skipped. The benchmarks are returned in increasing line length
// order so that the smaller functions are solved first.
func ReadBenchmarks(in io.Reader) ([]Benchmark, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return len(lines[i]) < len(lines[j])
	})

	var result []Benchmark
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < 3 || strings.HasPrefix(parts[0], "#") {
			continue
		}
		if len(parts) != 3 {
			return nil, errors.Wrapf(ErrSyntax, "invalid benchmark: %s", line)
		}
		fanin, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "invalid fanin: %s", line)
		}
		gates, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "invalid gate count: %s", line)
		}
		result = append(result, Benchmark{
			TruthTable: parts[0],
			Fanin:      fanin,
			Gates:      gates,
		})
	}
	return result, nil
}
