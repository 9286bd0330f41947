//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package format

import (
	"bytes"
	"io"

	"github.com/markkurossi/esyn/tt"
)

// WriteNative writes the native listing of the circuit l: one line per
// node, "<node> = <operator> <fanin>...".
func WriteNative(out io.Writer, l Listing) error {
	var buf bytes.Buffer
	nin := l.NumInputs()
	for i := 0; i < l.NumNodes(); i++ {
		writeNode(&buf, l, i, nin)
		buf.WriteByte('\n')
	}
	_, err := out.Write(buf.Bytes())
	return err
}

func writeNode(buf *bytes.Buffer, l Listing, i, nin int) {
	buf.WriteByte(Symbol(nin+i, nin))
	buf.WriteString(" = ")
	buf.WriteString(tt.Binary(l.Operator(i)))
	for _, f := range l.Fanin(i) {
		buf.WriteByte(' ')
		buf.WriteByte(Symbol(f, nin))
	}
}
