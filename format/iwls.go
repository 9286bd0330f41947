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

	"github.com/pkg/errors"
)

// IWLS format fanin limits.
const (
	IWLSMinFanin = 2
	IWLSMaxFanin = 4
)

// WriteIWLS writes the circuit c in the IWLS 2018 contest format. Every
// step is written as a newline followed by "<node> = <operator>
// <fanin>...". The block ends without a newline; the caller writes
// the separator between consecutive circuits. Nothing is written if the
// circuit does not have exactly one output or if its fanin size is
// unsupported.
func WriteIWLS(out io.Writer, c Circuit) error {
	if c.NumOutputs() != 1 {
		return errors.Wrapf(ErrOutputCount, "circuit has %d outputs",
			c.NumOutputs())
	}
	k := c.FaninSize()
	if k < IWLSMinFanin || k > IWLSMaxFanin {
		return errors.Wrapf(ErrUnsupportedFanin, "fanin size %d", k)
	}

	var buf bytes.Buffer
	nin := c.NumInputs()
	for i := 0; i < c.NumNodes(); i++ {
		if len(c.Fanin(i)) != k {
			return errors.Errorf("step %d has %d fanins, expected %d",
				i, len(c.Fanin(i)), k)
		}
		buf.WriteByte('\n')
		writeNode(&buf, c, i, nin)
	}
	_, err := out.Write(buf.Bytes())
	return err
}

// IWLSFileName returns the contest file name for the solutions of the
// hex truth table with the fanin size and gate count.
func IWLSFileName(truthTable string, fanin, gates int) string {
	return fmt.Sprintf("%s-%d-%d.bln", truthTable, fanin, gates)
}
