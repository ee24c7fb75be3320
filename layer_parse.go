package circuit

import (
	"bytes"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ParseError is an error in the textual layer format together with its position.
type ParseError struct {
	Line, Column int
	Err          error // wrapped error, may be nil

	err *parse.Error
}

func (e *ParseError) Error() string {
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLayer reads a single layer from r. Each line holds a command: `wire NAME X1 Y1 X2 Y2` adds a wire and `done` ends the layer. Reaching the end of the input also ends the layer.
func ParseLayer(r io.Reader) (*Layer, error) {
	p := newLayerParser(parse.NewInput(r))
	layer, _, err := p.parseLayer()
	if err != nil {
		return nil, err
	}
	return layer, nil
}

// ParseLayers reads consecutive layers from r until the end of the input, each layer terminated by `done`.
func ParseLayers(r io.Reader) ([]*Layer, error) {
	p := newLayerParser(parse.NewInput(r))

	layers := []*Layer{}
	for {
		layer, done, err := p.parseLayer()
		if err != nil {
			return nil, err
		}
		if done || 0 < layer.Len() {
			layers = append(layers, layer)
		}
		if !done {
			return layers, nil
		}
	}
}

type layerParser struct {
	z *parse.Input
}

func newLayerParser(z *parse.Input) *layerParser {
	return &layerParser{z: z}
}

func (p *layerParser) errorf(offset int, err error, format string, a ...any) error {
	perr := parse.NewError(bytes.NewReader(p.z.Bytes()), offset, format, a...)
	return &ParseError{
		Line:   perr.Line,
		Column: perr.Column,
		Err:    err,
		err:    perr,
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func (p *layerParser) skipSpace(newlines bool) {
	for c := p.z.Peek(0); isSpace(c) || (newlines && c == '\n'); c = p.z.Peek(0) {
		p.z.Move(1)
	}
	p.z.Skip()
}

// isNUL returns true if the next byte is a NUL within the input rather than its end.
func (p *layerParser) isNUL() bool {
	return p.z.Peek(0) == 0 && p.z.Err() == nil
}

// token returns the next whitespace separated token on the current line and its offset, or nil at the end of the line.
func (p *layerParser) token() ([]byte, int) {
	p.skipSpace(false)
	offset := p.z.Offset()
	for c := p.z.Peek(0); c != 0 && c != '\n' && !isSpace(c); c = p.z.Peek(0) {
		p.z.Move(1)
	}
	return p.z.Shift(), offset
}

func (p *layerParser) number() (float64, error) {
	tok, offset := p.token()
	if len(tok) == 0 && p.isNUL() {
		return 0.0, p.errorf(offset, nil, "unexpected NUL byte")
	} else if len(tok) == 0 {
		return 0.0, p.errorf(offset, nil, "expected number")
	}
	f, n := strconv.ParseFloat(tok)
	if n != len(tok) {
		return 0.0, p.errorf(offset, nil, "bad number: %s", tok)
	}
	return f, nil
}

func (p *layerParser) endOfLine() error {
	if tok, offset := p.token(); len(tok) != 0 {
		return p.errorf(offset, nil, "unexpected %s", tok)
	} else if p.isNUL() {
		return p.errorf(offset, nil, "unexpected NUL byte")
	}
	return nil
}

// parseLayer returns the next layer and whether it was terminated by done.
func (p *layerParser) parseLayer() (*Layer, bool, error) {
	layer := NewLayer()
	for {
		p.skipSpace(true)
		if p.z.Peek(0) == 0 {
			if err := p.z.Err(); err == nil {
				return nil, false, p.errorf(p.z.Offset(), nil, "unexpected NUL byte")
			} else if err != io.EOF {
				return nil, false, err
			}
			return layer, false, nil
		}

		cmd, offset := p.token()
		switch string(cmd) {
		case "wire":
			name, nameOffset := p.token()
			if len(name) == 0 {
				return nil, false, p.errorf(nameOffset, nil, "expected wire name")
			}
			var coords [4]float64
			for i := range coords {
				f, err := p.number()
				if err != nil {
					return nil, false, err
				}
				coords[i] = f
			}
			if _, err := layer.AddWire(string(name), coords[0], coords[1], coords[2], coords[3]); err != nil {
				return nil, false, p.errorf(offset, err, "%v", err)
			}
			if err := p.endOfLine(); err != nil {
				return nil, false, err
			}
		case "done":
			if err := p.endOfLine(); err != nil {
				return nil, false, err
			}
			return layer, true, nil
		default:
			return nil, false, p.errorf(offset, nil, "unknown command: %s", cmd)
		}
	}
}
