package svgtiles

// pathDescriptionParser is a recursive-descent parser for path data. Each
// ParsePath call owns one and discards it when done.
type pathDescriptionParser struct {
	sc   scanner
	cmds PathSpec
}

// ParsePath parses SVG path data into its commands. It fails with
// ErrMissingMoveto, ErrEmptyCommandArguments, ErrIncompleteArguments,
// ErrNegativeRadius, ErrMalformedNumber or ErrUnknownPathCommand, wrapped
// in a *ParseError that points at the offending input. Empty path data
// yields an empty PathSpec.
func ParsePath(d string) (PathSpec, error) {
	pdp := &pathDescriptionParser{sc: scanner{s: d}}
	if err := pdp.parse(); err != nil {
		return nil, err
	}
	return pdp.cmds, nil
}

func (pdp *pathDescriptionParser) fail(err error, offset int) error {
	return newParseError(err, pdp.sc.s, offset)
}

// parse implements
//
//	svg-path: wsp* moveto-drawto-command-groups? wsp*
func (pdp *pathDescriptionParser) parse() error {
	pdp.sc.skipWsp()
	if pdp.sc.eof() {
		return nil
	}
	if c := pdp.sc.peek(); c != 'M' && c != 'm' {
		return pdp.fail(ErrMissingMoveto, pdp.sc.pos)
	}
	for {
		pdp.sc.skipWsp()
		if pdp.sc.eof() {
			return nil
		}
		if err := pdp.parseCommand(); err != nil {
			return err
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand() error {
	start := pdp.sc.pos
	kind, relative, ok := commandFromLetter(pdp.sc.peek())
	if !ok {
		return pdp.fail(ErrUnknownPathCommand, start)
	}
	pdp.sc.pos++

	cmd := Command{Kind: kind, Relative: relative}
	if kind == ClosePath {
		pdp.cmds = append(pdp.cmds, cmd)
		return nil
	}

	pdp.sc.skipWsp()
	for {
		args, ok, err := pdp.parseGroup(kind, cmd.Args)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		cmd.Args = args
		pdp.sc.skipCommaWsp()
	}
	if len(cmd.Args) == 0 {
		return pdp.fail(ErrEmptyCommandArguments, start)
	}
	pdp.cmds = append(pdp.cmds, cmd)
	return nil
}

// parseGroup appends one argument group of kind to args. ok is false when
// no group starts at the cursor.
func (pdp *pathDescriptionParser) parseGroup(kind CommandKind, args []float64) ([]float64, bool, error) {
	switch kind {
	case HorizontalLineTo, VerticalLineTo:
		n, ok, err := pdp.sc.number()
		if err != nil || !ok {
			return args, false, err
		}
		return append(args, n), true, nil
	case ArcTo:
		return pdp.parseArc(args)
	}

	pairs := kind.Arity() / 2
	for i := 0; i < pairs; i++ {
		if i > 0 {
			pdp.sc.skipCommaWsp()
		}
		t, ok, err := pdp.parseTuple()
		if err != nil {
			return args, false, err
		}
		if !ok {
			if i == 0 {
				return args, false, nil
			}
			return args, false, pdp.fail(ErrIncompleteArguments, pdp.sc.pos)
		}
		args = append(args, t[0], t[1])
	}
	return args, true, nil
}

// parseTuple reads coordinate-pair: number comma-wsp? number.
func (pdp *pathDescriptionParser) parseTuple() (Tuple, bool, error) {
	x, ok, err := pdp.sc.number()
	if err != nil || !ok {
		return Tuple{}, false, err
	}
	pdp.sc.skipCommaWsp()
	y, ok, err := pdp.sc.number()
	if err != nil {
		return Tuple{}, false, err
	}
	if !ok {
		return Tuple{}, false, pdp.fail(ErrIncompleteArguments, pdp.sc.pos)
	}
	return Tuple{x, y}, true, nil
}

// parseArc reads
//
//	elliptical-arc-argument:
//	    nonnegative-number comma-wsp? nonnegative-number comma-wsp?
//	    number comma-wsp flag comma-wsp? flag comma-wsp? coordinate-pair
func (pdp *pathDescriptionParser) parseArc(args []float64) ([]float64, bool, error) {
	radius := func() (float64, bool, error) {
		at := pdp.sc.pos
		r, ok, err := pdp.sc.number()
		if err != nil || !ok {
			return 0, ok, err
		}
		if r < 0 {
			return 0, false, pdp.fail(ErrNegativeRadius, at)
		}
		return r, true, nil
	}

	rx, ok, err := radius()
	if err != nil || !ok {
		return args, false, err
	}
	pdp.sc.skipCommaWsp()
	ry, ok, err := radius()
	if err == nil && !ok {
		err = pdp.fail(ErrIncompleteArguments, pdp.sc.pos)
	}
	if err != nil {
		return args, false, err
	}
	pdp.sc.skipCommaWsp()
	rot, ok, err := pdp.sc.number()
	if err == nil && !ok {
		err = pdp.fail(ErrIncompleteArguments, pdp.sc.pos)
	}
	if err != nil {
		return args, false, err
	}

	var flags [2]float64
	for i := range flags {
		pdp.sc.skipCommaWsp()
		at := pdp.sc.pos
		f, ok := pdp.sc.flag()
		if !ok {
			if pdp.sc.numberEnd() >= 0 {
				return args, false, pdp.fail(ErrMalformedNumber, at)
			}
			return args, false, pdp.fail(ErrIncompleteArguments, at)
		}
		flags[i] = f
	}

	pdp.sc.skipCommaWsp()
	t, ok, err := pdp.parseTuple()
	if err == nil && !ok {
		err = pdp.fail(ErrIncompleteArguments, pdp.sc.pos)
	}
	if err != nil {
		return args, false, err
	}
	return append(args, rx, ry, rot, flags[0], flags[1], t[0], t[1]), true, nil
}
