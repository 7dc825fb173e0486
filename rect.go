package svgtiles

import (
	"strings"
)

// Rect is an SVG rect element. Inside a tile it is the reference frame
// that the tile's geometry is fitted to.
type Rect struct {
	X, Y, Width, Height float64
}

func parseRect(attrs elementAttrs) (Rect, error) {
	var r Rect
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"x", &r.X},
		{"y", &r.Y},
		{"width", &r.Width},
		{"height", &r.Height},
	} {
		v, err := attrLength(attrs, f.name)
		if err != nil {
			return r, err
		}
		*f.dst = v
	}
	return r, nil
}

// bounds returns the page-space bounds of r drawn under xf.
func (r Rect) bounds(xf Matrix) Box {
	return TransformedRectBounds(xf, r.X, r.Y, r.Width, r.Height)
}

// attrLength parses a plain number attribute, allowing a "px" unit. A
// missing attribute is zero.
func attrLength(attrs elementAttrs, name string) (float64, error) {
	s, ok := attrs[name]
	if !ok {
		return 0, nil
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	sc := &scanner{s: s}
	v, ok, err := sc.number()
	if err != nil {
		return 0, err
	}
	if !ok || !sc.eof() {
		return 0, newParseError(ErrMalformedNumber, s, sc.pos)
	}
	return v, nil
}
