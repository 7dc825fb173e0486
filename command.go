package svgtiles

import (
	"strconv"
	"strings"
)

// CommandKind tells the flattener which path command a Command holds.
type CommandKind int

// These are the path data commands, one per command letter pair.
const (
	MoveTo CommandKind = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicBezierTo
	SmoothCubicTo
	QuadraticBezierTo
	SmoothQuadraticTo
	ArcTo
	ClosePath
)

var commandLetters = [...]byte{
	MoveTo:            'M',
	LineTo:            'L',
	HorizontalLineTo:  'H',
	VerticalLineTo:    'V',
	CubicBezierTo:     'C',
	SmoothCubicTo:     'S',
	QuadraticBezierTo: 'Q',
	SmoothQuadraticTo: 'T',
	ArcTo:             'A',
	ClosePath:         'Z',
}

var commandArity = [...]int{
	MoveTo:            2,
	LineTo:            2,
	HorizontalLineTo:  1,
	VerticalLineTo:    1,
	CubicBezierTo:     6,
	SmoothCubicTo:     4,
	QuadraticBezierTo: 4,
	SmoothQuadraticTo: 2,
	ArcTo:             7,
	ClosePath:         0,
}

// commandFromLetter maps a path data letter to its kind; lowercase letters
// are relative.
func commandFromLetter(c byte) (kind CommandKind, relative, ok bool) {
	upper := c
	if 'a' <= c && c <= 'z' {
		upper = c - 'a' + 'A'
		relative = true
	}
	for k, l := range commandLetters {
		if l == upper {
			return CommandKind(k), relative, true
		}
	}
	return 0, false, false
}

// Arity returns how many numbers make up one argument group of k.
func (k CommandKind) Arity() int {
	if k < 0 || int(k) >= len(commandArity) {
		return 0
	}
	return commandArity[k]
}

// Letter returns the path data letter for k.
func (k CommandKind) Letter(relative bool) byte {
	if k < 0 || int(k) >= len(commandLetters) {
		return '?'
	}
	l := commandLetters[k]
	if relative {
		l += 'a' - 'A'
	}
	return l
}

func (k CommandKind) String() string {
	switch k {
	case MoveTo:
		return "moveto"
	case LineTo:
		return "lineto"
	case HorizontalLineTo:
		return "horizontal lineto"
	case VerticalLineTo:
		return "vertical lineto"
	case CubicBezierTo:
		return "curveto"
	case SmoothCubicTo:
		return "smooth curveto"
	case QuadraticBezierTo:
		return "quadratic curveto"
	case SmoothQuadraticTo:
		return "smooth quadratic curveto"
	case ArcTo:
		return "elliptical arc"
	case ClosePath:
		return "closepath"
	}
	return "unknown"
}

// Command is one path data command with all of its argument groups. Args
// holds the groups back to back, Kind.Arity() numbers each; arc groups are
// (rx, ry, x-axis-rotation, large-arc-flag, sweep-flag, x, y).
type Command struct {
	Kind     CommandKind
	Relative bool
	Args     []float64
}

// Groups returns the number of argument groups in c.
func (c Command) Groups() int {
	n := c.Kind.Arity()
	if n == 0 {
		return 0
	}
	return len(c.Args) / n
}

// Group returns the i-th argument group of c.
func (c Command) Group(i int) []float64 {
	n := c.Kind.Arity()
	return c.Args[i*n : (i+1)*n]
}

// PathSpec is parsed path data: the commands in source order, starting
// with a moveto. Coordinates are kept as written; relative commands are
// resolved by the flattener.
type PathSpec []Command

// String renders s back to path data.
func (s PathSpec) String() string {
	var sb strings.Builder
	for i, c := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c.Kind.Letter(c.Relative))
		for j, v := range c.Args {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return sb.String()
}
