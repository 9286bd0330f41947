//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/markkurossi/esyn/tt"
)

// WriteDot writes graphviz dot output of the circuit l.
func WriteDot(out io.Writer, l Listing) error {
	var buf bytes.Buffer
	nin := l.NumInputs()

	fmt.Fprintf(&buf, "digraph circuit\n{\n")
	fmt.Fprintf(&buf, "  overlap=scale;\n")
	fmt.Fprintf(&buf, "  node\t[fontname=\"Helvetica\"];\n")
	fmt.Fprintf(&buf, "  {\n    node [shape=plaintext];\n")
	for i := 0; i < nin; i++ {
		fmt.Fprintf(&buf, "    n%d\t[label=\"%c\"];\n", i, Symbol(i, nin))
	}
	fmt.Fprintf(&buf, "  }\n")

	fmt.Fprintf(&buf, "  {\n    node [shape=box];\n")
	for i := 0; i < l.NumNodes(); i++ {
		fmt.Fprintf(&buf, "    n%d\t[label=\"%c\\n%s\"];\n",
			nin+i, Symbol(nin+i, nin), tt.Binary(l.Operator(i)))
	}
	fmt.Fprintf(&buf, "  }\n")

	if nin > 0 {
		fmt.Fprintf(&buf, "  {  rank=same")
		for i := 0; i < nin; i++ {
			fmt.Fprintf(&buf, "; n%d", i)
		}
		fmt.Fprintf(&buf, ";}\n")
	}

	for i := 0; i < l.NumNodes(); i++ {
		for _, f := range l.Fanin(i) {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", f, nin+i)
		}
	}
	fmt.Fprintf(&buf, "}\n")

	_, err := out.Write(buf.Bytes())
	return err
}
