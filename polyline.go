package svgtiles

// polySpec turns the points attribute of a polyline or polygon into a
// moveto followed by linetos; polygons are closed.
func polySpec(points string, closed bool) (PathSpec, error) {
	sc := &scanner{s: points}
	var coords []float64
	sc.skipWsp()
	for {
		v, ok, err := sc.number()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		coords = append(coords, v)
		sc.skipCommaWsp()
	}
	sc.skipWsp()
	if !sc.eof() {
		return nil, newParseError(ErrMalformedNumber, points, sc.pos)
	}
	if len(coords)%2 != 0 {
		return nil, newParseError(ErrIncompleteArguments, points, len(points))
	}
	if len(coords) == 0 {
		return nil, nil
	}

	spec := PathSpec{{Kind: MoveTo, Args: coords[:2]}}
	if len(coords) > 2 {
		spec = append(spec, Command{Kind: LineTo, Args: coords[2:]})
	}
	if closed {
		spec = append(spec, Command{Kind: ClosePath})
	}
	return spec, nil
}

func lineSpec(attrs elementAttrs) (PathSpec, error) {
	var v [4]float64
	for i, name := range []string{"x1", "y1", "x2", "y2"} {
		n, err := attrLength(attrs, name)
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return PathSpec{
		{Kind: MoveTo, Args: []float64{v[0], v[1]}},
		{Kind: LineTo, Args: []float64{v[2], v[3]}},
	}, nil
}
