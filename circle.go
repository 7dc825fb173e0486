package svgtiles

// kappa places the control points of a cubic quarter circle.
const kappa = 0.5522847498307936

func circleSpec(attrs elementAttrs) (PathSpec, error) {
	cx, err := attrLength(attrs, "cx")
	if err != nil {
		return nil, err
	}
	cy, err := attrLength(attrs, "cy")
	if err != nil {
		return nil, err
	}
	r, err := attrLength(attrs, "r")
	if err != nil {
		return nil, err
	}
	return ellipsePath(cx, cy, r, r), nil
}

func ellipseSpec(attrs elementAttrs) (PathSpec, error) {
	var v [4]float64
	for i, name := range []string{"cx", "cy", "rx", "ry"} {
		n, err := attrLength(attrs, name)
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return ellipsePath(v[0], v[1], v[2], v[3]), nil
}

// ellipsePath draws the ellipse as four cubic quadrants, starting at the
// rightmost point and turning towards positive y. A non-positive radius
// draws nothing.
func ellipsePath(cx, cy, rx, ry float64) PathSpec {
	if !(rx > 0) || !(ry > 0) {
		return nil
	}
	kx, ky := kappa*rx, kappa*ry
	return PathSpec{
		{Kind: MoveTo, Args: []float64{cx + rx, cy}},
		{Kind: CubicBezierTo, Args: []float64{
			cx + rx, cy + ky, cx + kx, cy + ry, cx, cy + ry,
			cx - kx, cy + ry, cx - rx, cy + ky, cx - rx, cy,
			cx - rx, cy - ky, cx - kx, cy - ry, cx, cy - ry,
			cx + kx, cy - ry, cx + rx, cy - ky, cx + rx, cy,
		}},
		{Kind: ClosePath},
	}
}
