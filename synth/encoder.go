//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package synth

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/markkurossi/esyn/chain"
	"github.com/markkurossi/esyn/tt"
)

// selection holds the selection variable of one fanin tuple.
type selection struct {
	fanin []int
	lit   z.Lit
}

// encoding holds the SAT encoding of the single-output exact synthesis
// problem of numSteps steps:
//
//   - sel[i] selects the fanin tuple of step i; exactly one is true
//   - op[i][p] is bit p of the operator of step i
//   - sim[i][t] is the value of step i at truth table row t
//
// Fanin tuples are strictly increasing so every set of fanins is
// encoded once.
type encoding struct {
	numInputs  int
	fanin      int
	numSteps   int
	sel        [][]selection
	op         [][]z.Lit
	sim        [][]z.Lit
	numVars    int
	numClauses int
}

// combinations calls fn for each strictly increasing k-tuple of
// {0..n-1}.
func combinations(n, k int, fn func(tuple []int)) {
	if k > n {
		return
	}
	tuple := make([]int, k)
	for i := range tuple {
		tuple[i] = i
	}
	for {
		fn(tuple)
		i := k - 1
		for i >= 0 && tuple[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		tuple[i]++
		for j := i + 1; j < k; j++ {
			tuple[j] = tuple[j-1] + 1
		}
	}
}

func (e *encoding) lit(g *gini.Gini) z.Lit {
	e.numVars++
	return g.Lit()
}

func (e *encoding) clause(g *gini.Gini, ms ...z.Lit) {
	for _, m := range ms {
		g.Add(m)
	}
	g.Add(z.LitNull)
	e.numClauses++
}

// encode adds the synthesis constraints of function f to the solver.
func encode(g *gini.Gini, f *tt.Dynamic, fanin, numSteps int) *encoding {
	n := f.NumVars()
	e := &encoding{
		numInputs: n,
		fanin:     fanin,
		numSteps:  numSteps,
		sel:       make([][]selection, numSteps),
		op:        make([][]z.Lit, numSteps),
		sim:       make([][]z.Lit, numSteps),
	}
	numRows := f.NumBits()
	numOps := 1 << uint(fanin)

	for i := 0; i < numSteps; i++ {
		combinations(n+i, fanin, func(tuple []int) {
			t := make([]int, len(tuple))
			copy(t, tuple)
			e.sel[i] = append(e.sel[i], selection{
				fanin: t,
				lit:   e.lit(g),
			})
		})
		for p := 0; p < numOps; p++ {
			e.op[i] = append(e.op[i], e.lit(g))
		}
		for t := 0; t < numRows; t++ {
			e.sim[i] = append(e.sim[i], e.lit(g))
		}
	}

	for i := 0; i < numSteps; i++ {
		e.encodeSelection(g, i)
		e.encodeSimulation(g, i, numRows, numOps)
	}

	// The last step computes the function.
	last := numSteps - 1
	for t := 0; t < numRows; t++ {
		if f.Bit(t) {
			e.clause(g, e.sim[last][t])
		} else {
			e.clause(g, e.sim[last][t].Not())
		}
	}

	// All other steps are referenced by a later step.
	for i := 0; i < last; i++ {
		id := n + i
		var ms []z.Lit
		for j := i + 1; j < numSteps; j++ {
			for _, s := range e.sel[j] {
				if contains(s.fanin, id) {
					ms = append(ms, s.lit)
				}
			}
		}
		e.clause(g, ms...)
	}

	return e
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// encodeSelection adds the exactly-one constraint for the fanin tuple
// of step i.
func (e *encoding) encodeSelection(g *gini.Gini, i int) {
	var ms []z.Lit
	for _, s := range e.sel[i] {
		ms = append(ms, s.lit)
	}
	e.clause(g, ms...)
	for a := 0; a < len(ms); a++ {
		for b := a + 1; b < len(ms); b++ {
			e.clause(g, ms[a].Not(), ms[b].Not())
		}
	}
}

// encodeSimulation adds the constraints binding the value of step i at
// each row to its operator and selected fanins.
func (e *encoding) encodeSimulation(g *gini.Gini, i, numRows, numOps int) {
	n := e.numInputs
	ms := make([]z.Lit, 0, e.fanin+3)

	for _, s := range e.sel[i] {
		for t := 0; t < numRows; t++ {
		ops:
			for p := 0; p < numOps; p++ {
				ms = append(ms[:0], s.lit.Not())
				for m, id := range s.fanin {
					want := p&(1<<uint(m)) != 0
					if id < n {
						if (t&(1<<uint(id)) != 0) != want {
							// Pattern p does not occur at row t.
							continue ops
						}
						continue
					}
					x := e.sim[id-n][t]
					if want {
						ms = append(ms, x.Not())
					} else {
						ms = append(ms, x)
					}
				}
				l := len(ms)
				e.clause(g, append(ms[:l], e.op[i][p].Not(), e.sim[i][t])...)
				e.clause(g, append(ms[:l], e.op[i][p], e.sim[i][t].Not())...)
			}
		}
	}
}

// extract reads the chain of the current model into c.
func (e *encoding) extract(g *gini.Gini, c *chain.Chain) error {
	if err := c.Reset(e.numInputs, e.fanin); err != nil {
		return err
	}
	var id int
	for i := 0; i < e.numSteps; i++ {
		var fanin []int
		for _, s := range e.sel[i] {
			if g.Value(s.lit) {
				fanin = s.fanin
				break
			}
		}
		op := tt.NewStatic(e.fanin)
		for p, m := range e.op[i] {
			if g.Value(m) {
				op.SetBit(p)
			}
		}
		var err error
		id, err = c.AddStep(fanin, op)
		if err != nil {
			return err
		}
	}
	return c.AddOutput(id)
}

// block adds a clause excluding the current model's selection and
// operator assignment.
func (e *encoding) block(g *gini.Gini) {
	var ms []z.Lit
	for i := 0; i < e.numSteps; i++ {
		for _, s := range e.sel[i] {
			if g.Value(s.lit) {
				ms = append(ms, s.lit.Not())
			}
		}
		for _, m := range e.op[i] {
			if g.Value(m) {
				ms = append(ms, m.Not())
			} else {
				ms = append(ms, m)
			}
		}
	}
	e.clause(g, ms...)
}
