//
// parser.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package format

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/markkurossi/esyn/network"
	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
)

var reParts = regexp.MustCompilePOSIX("[[:space:]]+")

type parser struct {
	in   *bufio.Reader
	line int
}

func newParser(in io.Reader) *parser {
	return &parser{
		in: bufio.NewReader(in),
	}
}

// readLine reads the next line and splits it into fields. Blank lines
// return an empty field list.
func (p *parser) readLine() ([]string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF || len(line) == 0 {
			return nil, err
		}
	}
	p.line++
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return []string{}, nil
	}
	return reParts.Split(line, -1), nil
}

func (p *parser) errorf(format string, a ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "line %d: "+format,
		append([]interface{}{p.line}, a...)...)
}

// builder collects the nodes of one network.
type builder struct {
	numInputs int
	nodes     []network.Node
}

func (b *builder) add(p *parser, parts []string) error {
	if len(parts) < 3 || parts[1] != "=" {
		return p.errorf("invalid node definition: %v", parts)
	}
	if len(parts[0]) != 1 || parts[0][0] < 'A' || parts[0][0] > 'Z' {
		return p.errorf("invalid node symbol '%s'", parts[0])
	}
	sym := int(parts[0][0] - 'A')
	if len(b.nodes) == 0 {
		b.numInputs = sym
	}
	if sym != b.numInputs+len(b.nodes) {
		return p.errorf("unexpected node symbol '%s'", parts[0])
	}

	op, err := tt.ParseBinary(parts[2])
	if err != nil {
		return p.errorf("%v", err)
	}
	var fanin []int
	for _, f := range parts[3:] {
		if len(f) != 1 {
			return p.errorf("invalid fanin symbol '%s'", f)
		}
		var id int
		switch ch := f[0]; {
		case 'a' <= ch && ch <= 'z':
			id = int(ch - 'a')
			if id >= b.numInputs {
				return p.errorf("input '%s' out of range", f)
			}
		case 'A' <= ch && ch <= 'Z':
			id = int(ch - 'A')
			if id < b.numInputs || id >= sym {
				return p.errorf("node '%s' out of range", f)
			}
		default:
			return p.errorf("invalid fanin symbol '%s'", f)
		}
		fanin = append(fanin, id)
	}
	if op.NumVars() != len(fanin) {
		return p.errorf("%d-bit operator for %d fanins",
			op.NumBits(), len(fanin))
	}
	b.nodes = append(b.nodes, network.Node{
		Fanin: fanin,
		Op:    op,
	})
	return nil
}

// network creates the network. The last node is the network output.
func (b *builder) network() (*network.Network, error) {
	outputs := []int{b.numInputs + len(b.nodes) - 1}
	return network.New(b.numInputs, b.nodes, outputs)
}

// ParseNative parses a native listing into a network. The number of
// inputs is derived from the first node symbol and the last node is
// the network output.
func ParseNative(in io.Reader) (*network.Network, error) {
	p := newParser(in)
	b := new(builder)
	for {
		parts, err := p.readLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(parts) == 0 {
			continue
		}
		if err := b.add(p, parts); err != nil {
			return nil, err
		}
	}
	if len(b.nodes) == 0 {
		return nil, errors.Wrap(ErrSyntax, "no nodes")
	}
	return b.network()
}

// ParseIWLS parses an IWLS 2018 solution file. Solutions are separated
// by blank lines.
func ParseIWLS(in io.Reader) ([]*network.Network, error) {
	p := newParser(in)
	var result []*network.Network
	b := new(builder)

	flush := func() error {
		if len(b.nodes) == 0 {
			return nil
		}
		n, err := b.network()
		if err != nil {
			return err
		}
		result = append(result, n)
		b = new(builder)
		return nil
	}

	for {
		parts, err := p.readLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(parts) == 0 {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.add(p, parts); err != nil {
			return nil, err
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return result, nil
}
