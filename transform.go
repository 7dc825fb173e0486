package svgtiles

import (
	"go.uber.org/zap"
)

// transformFunc is one of the functions allowed in a transform list.
type transformFunc int

const (
	funcMatrix transformFunc = iota
	funcTranslate
	funcScale
	funcRotate
	funcSkewX
	funcSkewY
)

var transformFuncNames = [...]string{
	funcMatrix:    "matrix",
	funcTranslate: "translate",
	funcScale:     "scale",
	funcRotate:    "rotate",
	funcSkewX:     "skewX",
	funcSkewY:     "skewY",
}

func (f transformFunc) String() string {
	return transformFuncNames[f]
}

// matrix builds the transform for f from its arguments. ok is false when
// the argument count does not fit f.
func (f transformFunc) matrix(args []float64) (m Matrix, ok bool) {
	switch f {
	case funcMatrix:
		if len(args) == 6 {
			return Matrix{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, true
		}
	case funcTranslate:
		switch len(args) {
		case 1:
			return Translate(args[0], 0), true
		case 2:
			return Translate(args[0], args[1]), true
		}
	case funcScale:
		switch len(args) {
		case 1:
			return Scale(args[0], args[0]), true
		case 2:
			return Scale(args[0], args[1]), true
		}
	case funcRotate:
		switch len(args) {
		case 1:
			return Rotate(args[0]), true
		case 3:
			return RotateAbout(args[0], args[1], args[2]), true
		}
	case funcSkewX:
		if len(args) == 1 {
			return SkewX(args[0]), true
		}
	case funcSkewY:
		if len(args) == 1 {
			return SkewY(args[0]), true
		}
	}
	return Matrix{}, false
}

// ParseTransform parses an SVG transform list such as
// "translate(10,5) scale(2)" into one matrix. Functions compose left to
// right, each one applying in the frame set up by those before it.
//
// Functions with the wrong number of arguments are skipped and anything
// after the last well-formed function is ignored; both are logged. The only
// error is ErrMalformedNumber for a number literal that does not convert.
func ParseTransform(s string) (Matrix, error) {
	sc := &scanner{s: s}
	result := Identity()
	for first := true; ; first = false {
		start := sc.pos
		if first {
			sc.skipWsp()
		} else if !sc.skipSeparators() {
			break
		}
		fn, args, ok, err := parseTransformFunc(sc)
		if err != nil {
			return Identity(), err
		}
		if !ok {
			sc.pos = start
			break
		}
		m, ok := fn.matrix(args)
		if !ok {
			Logger().Warn("ignoring transform function with wrong argument count",
				zap.Stringer("function", fn),
				zap.Float64s("args", args),
				zap.String("transform", s))
			continue
		}
		result = result.Mul(m)
	}

	sc.skipWsp()
	if !sc.eof() {
		Logger().Warn("ignoring trailing transform data",
			zap.String("trailing", sc.rest()),
			zap.String("transform", s))
	}
	return result, nil
}

// parseTransformFunc reads name, wsp*, '(', wsp*, numbers, wsp*, ')'. ok is
// false when the input does not have that shape; the caller rewinds.
func parseTransformFunc(sc *scanner) (fn transformFunc, args []float64, ok bool, err error) {
	found := false
	for f, name := range transformFuncNames {
		if sc.keyword(name) {
			fn, found = transformFunc(f), true
			break
		}
	}
	if !found {
		return 0, nil, false, nil
	}

	sc.skipWsp()
	if sc.peek() != '(' {
		return 0, nil, false, nil
	}
	sc.pos++
	sc.skipWsp()

	for {
		v, ok, err := sc.number()
		if err != nil {
			return 0, nil, false, err
		}
		if !ok {
			return 0, nil, false, nil
		}
		args = append(args, v)

		mark := sc.pos
		if !sc.skipSeparators() {
			break
		}
		if sc.numberEnd() < 0 {
			sc.pos = mark
			break
		}
	}

	sc.skipWsp()
	if sc.peek() != ')' {
		return 0, nil, false, nil
	}
	sc.pos++
	return fn, args, true, nil
}
