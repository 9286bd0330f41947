//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package session

import (
	"fmt"
	"io"

	"github.com/markkurossi/esyn/format"
	"github.com/markkurossi/tabulate"
)

func marker(current bool) string {
	if current {
		return "*"
	}
	return ""
}

// PrintSpecs prints the specification store summary to out.
func (s *Session) PrintSpecs(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("").SetAlign(tabulate.ML)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Specification").SetAlign(tabulate.ML)

	for idx, sp := range s.Specs.Items() {
		row := tab.Row()
		row.Column(marker(idx == s.Specs.CurrentIndex()))
		row.Column(fmt.Sprintf("%d", idx))
		row.Column(sp.Describe())
	}
	tab.Print(out)
}

// PrintNetworks prints the network store summary to out.
func (s *Session) PrintNetworks(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("").SetAlign(tabulate.ML)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Network").SetAlign(tabulate.ML)

	for idx, ntk := range s.Networks.Items() {
		row := tab.Row()
		row.Column(marker(idx == s.Networks.CurrentIndex()))
		row.Column(fmt.Sprintf("%d", idx))
		row.Column(ntk.Describe())
	}
	tab.Print(out)
}

// PrintSpec prints the current specification to out.
func (s *Session) PrintSpec(out io.Writer) error {
	sp, ok := s.Specs.Current()
	if !ok {
		return ErrNoSpec
	}
	sp.Print(out)
	return nil
}

// PrintNetwork prints the current network to out in the named format.
func (s *Session) PrintNetwork(out io.Writer, name string) error {
	ntk, ok := s.Networks.Current()
	if !ok {
		return ErrNoNetwork
	}
	return format.Marshal(out, ntk, name)
}
