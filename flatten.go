package svgtiles

import (
	"math"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

const (
	// DefaultTolerance is the largest distance, in output units, that a
	// curve's control points may stray from its chord before the curve is
	// split again.
	DefaultTolerance = 0.02
	// DefaultMaxDepth bounds how many times a single curve may be bisected.
	DefaultMaxDepth = 16
)

// ArcPolicy selects what the flattener does with elliptical arcs.
type ArcPolicy int

const (
	// ArcLine draws each arc as a straight segment to its end point.
	ArcLine ArcPolicy = iota
	// ArcError rejects arcs with ErrUnsupportedArc.
	ArcError
)

func (p ArcPolicy) String() string {
	switch p {
	case ArcLine:
		return "line"
	case ArcError:
		return "error"
	}
	return "unknown"
}

// ParseArcPolicy parses the String form of an ArcPolicy.
func ParseArcPolicy(s string) (ArcPolicy, error) {
	switch s {
	case "", "line":
		return ArcLine, nil
	case "error":
		return ArcError, nil
	}
	return 0, xerrors.Errorf("arc policy %q: %w", s, ErrInvalidConfig)
}

// LineSegment is a straight segment in output coordinates.
type LineSegment struct {
	P0, P1 Tuple
}

// Flattener turns path commands into line segments. The zero value uses
// DefaultTolerance, DefaultMaxDepth and ArcLine.
type Flattener struct {
	Tolerance float64
	MaxDepth  int
	Arcs      ArcPolicy
}

func (f Flattener) tolerance() float64 {
	if f.Tolerance > 0 {
		return f.Tolerance
	}
	return DefaultTolerance
}

func (f Flattener) maxDepth() int {
	if f.MaxDepth > 0 {
		return f.MaxDepth
	}
	return DefaultMaxDepth
}

// Flatten is Flattener{}.Flatten.
func Flatten(xf Matrix, spec PathSpec) ([]LineSegment, error) {
	return Flattener{}.Flatten(xf, spec)
}

// flattenState is the running pen state while walking one PathSpec.
type flattenState struct {
	f          Flattener
	xf         Matrix
	cur, start Tuple
	// ctrl is the last cubic or quadratic control point, valid when
	// lastCubic or lastQuad is set.
	ctrl      Tuple
	lastCubic bool
	lastQuad  bool
	out       []LineSegment
}

// Flatten interprets spec under the transform xf and returns the line
// segments it draws, in order. Curves are subdivided in output space, so
// the tolerance applies after xf. Zero-length segments are never returned.
func (f Flattener) Flatten(xf Matrix, spec PathSpec) ([]LineSegment, error) {
	st := &flattenState{f: f, xf: xf}
	for i, c := range spec {
		if err := st.command(c); err != nil {
			return nil, xerrors.Errorf("%s command %d: %w", c.Kind, i, err)
		}
	}
	return st.out, nil
}

func (st *flattenState) resolve(relative bool, x, y float64) Tuple {
	if relative {
		return Tuple{st.cur[0] + x, st.cur[1] + y}
	}
	return Tuple{x, y}
}

// lineTo emits cur->p unless the two points coincide, and moves to p.
func (st *flattenState) lineTo(p Tuple) {
	if p != st.cur {
		st.out = appendSegment(st.out, st.xf.Apply(st.cur), st.xf.Apply(p))
	}
	st.cur = p
}

func appendSegment(out []LineSegment, p0, p1 Tuple) []LineSegment {
	if p0 == p1 {
		return out
	}
	return append(out, LineSegment{P0: p0, P1: p1})
}

func (st *flattenState) cubicTo(c1, c2, p Tuple) error {
	segs, err := st.f.cubic(st.xf.Apply(st.cur), st.xf.Apply(c1), st.xf.Apply(c2), st.xf.Apply(p), 0)
	if err != nil {
		return err
	}
	st.out = append(st.out, segs...)
	st.cur = p
	return nil
}

func reflect(ctrl, about Tuple) Tuple {
	return Tuple{2*about[0] - ctrl[0], 2*about[1] - ctrl[1]}
}

// quadControls raises the quadratic from cur through q to p to cubic
// control points.
func quadControls(cur, q, p Tuple) (Tuple, Tuple) {
	return Tuple{cur[0] + 2.0/3.0*(q[0]-cur[0]), cur[1] + 2.0/3.0*(q[1]-cur[1])},
		Tuple{p[0] + 2.0/3.0*(q[0]-p[0]), p[1] + 2.0/3.0*(q[1]-p[1])}
}

func (st *flattenState) command(c Command) error {
	lastCubic, lastQuad := false, false
	defer func() {
		st.lastCubic, st.lastQuad = lastCubic, lastQuad
	}()

	switch c.Kind {
	case MoveTo:
		for i := 0; i < c.Groups(); i++ {
			g := c.Group(i)
			p := st.resolve(c.Relative, g[0], g[1])
			if i == 0 {
				st.start = p
				st.cur = p
				continue
			}
			st.lineTo(p)
		}
	case LineTo:
		for i := 0; i < c.Groups(); i++ {
			g := c.Group(i)
			st.lineTo(st.resolve(c.Relative, g[0], g[1]))
		}
	case HorizontalLineTo:
		for _, x := range c.Args {
			p := Tuple{x, st.cur[1]}
			if c.Relative {
				p[0] += st.cur[0]
			}
			st.lineTo(p)
		}
	case VerticalLineTo:
		for _, y := range c.Args {
			p := Tuple{st.cur[0], y}
			if c.Relative {
				p[1] += st.cur[1]
			}
			st.lineTo(p)
		}
	case CubicBezierTo, SmoothCubicTo:
		lastCubic = st.lastCubic
		for i := 0; i < c.Groups(); i++ {
			g := c.Group(i)
			var c1, c2, p Tuple
			if c.Kind == CubicBezierTo {
				c1 = st.resolve(c.Relative, g[0], g[1])
				c2 = st.resolve(c.Relative, g[2], g[3])
				p = st.resolve(c.Relative, g[4], g[5])
			} else {
				c1 = st.cur
				if lastCubic {
					c1 = reflect(st.ctrl, st.cur)
				}
				c2 = st.resolve(c.Relative, g[0], g[1])
				p = st.resolve(c.Relative, g[2], g[3])
			}
			if err := st.cubicTo(c1, c2, p); err != nil {
				return err
			}
			st.ctrl = c2
			lastCubic = true
		}
	case QuadraticBezierTo, SmoothQuadraticTo:
		lastQuad = st.lastQuad
		for i := 0; i < c.Groups(); i++ {
			g := c.Group(i)
			var q, p Tuple
			if c.Kind == QuadraticBezierTo {
				q = st.resolve(c.Relative, g[0], g[1])
				p = st.resolve(c.Relative, g[2], g[3])
			} else {
				q = st.cur
				if lastQuad {
					q = reflect(st.ctrl, st.cur)
				}
				p = st.resolve(c.Relative, g[0], g[1])
			}
			c1, c2 := quadControls(st.cur, q, p)
			if err := st.cubicTo(c1, c2, p); err != nil {
				return err
			}
			st.ctrl = q
			lastQuad = true
		}
	case ArcTo:
		for i := 0; i < c.Groups(); i++ {
			g := c.Group(i)
			p := st.resolve(c.Relative, g[5], g[6])
			if g[0] != 0 && g[1] != 0 && p != st.cur {
				if st.f.Arcs == ArcError {
					return ErrUnsupportedArc
				}
				Logger().Warn("drawing elliptical arc as a straight line",
					zap.Float64s("arc", g))
			}
			st.lineTo(p)
		}
	case ClosePath:
		st.lineTo(st.start)
	default:
		Logger().Warn("skipping unsupported path command", zap.Int("kind", int(c.Kind)))
	}
	return nil
}

// cubic flattens the cubic a,b,c,d, already in output space. A curve whose
// control points lie within tolerance of the chord a-d is emitted as its
// control polygon; otherwise it is split at t=0.5 and each half flattened.
func (f Flattener) cubic(a, b, c, d Tuple, depth int) ([]LineSegment, error) {
	dev, ok := cubicDeviation(a, b, c, d)
	if !ok {
		return nil, nil
	}
	if dev <= f.tolerance() {
		var out []LineSegment
		out = appendSegment(out, a, b)
		out = appendSegment(out, b, c)
		out = appendSegment(out, c, d)
		return out, nil
	}
	if depth >= f.maxDepth() {
		return nil, ErrFlattenRecursionLimit
	}

	ab, bc, cd := mid(a, b), mid(b, c), mid(c, d)
	abc, bcd := mid(ab, bc), mid(bc, cd)
	abcd := mid(abc, bcd)

	left, err := f.cubic(a, ab, abc, abcd, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := f.cubic(abcd, bcd, cd, d, depth+1)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// cubicDeviation returns the larger distance of b and c from the line
// through a and d. When a and d coincide it measures the distance from a
// instead. ok is false for a curve collapsed to a single point.
func cubicDeviation(a, b, c, d Tuple) (dev float64, ok bool) {
	px, py := d[1]-a[1], -(d[0] - a[0])
	chord := math.Hypot(px, py)
	if chord == 0 {
		if a == b && a == c {
			return 0, false
		}
		return math.Max(math.Hypot(b[0]-a[0], b[1]-a[1]), math.Hypot(c[0]-a[0], c[1]-a[1])), true
	}
	db := math.Abs(px*(b[0]-a[0]) + py*(b[1]-a[1]))
	dc := math.Abs(px*(c[0]-a[0]) + py*(c[1]-a[1]))
	return math.Max(db, dc) / chord, true
}

func mid(a, b Tuple) Tuple {
	return Tuple{0.5 * (a[0] + b[0]), 0.5 * (a[1] + b[1])}
}
