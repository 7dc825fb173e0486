package svgtiles

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

type PathTest struct {
	Description string
	D           string
	Want        PathSpec
}

var pathTests = []PathTest{
	{
		"empty",
		"",
		nil,
	},
	{
		"whitespace only",
		" \t\r\n",
		nil,
	},
	{
		"absolute lines",
		"M0,0 L10,0 L10,10 Z",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: LineTo, Args: []float64{10, 0}},
			{Kind: LineTo, Args: []float64{10, 10}},
			{Kind: ClosePath},
		},
	},
	{
		"relative moveto with implicit lineto pairs",
		"m1 2 3 4",
		PathSpec{
			{Kind: MoveTo, Relative: true, Args: []float64{1, 2, 3, 4}},
		},
	},
	{
		"numbers without separators",
		"M10-5L.5.5",
		PathSpec{
			{Kind: MoveTo, Args: []float64{10, -5}},
			{Kind: LineTo, Args: []float64{0.5, 0.5}},
		},
	},
	{
		"exponents",
		"M1e2,1E-1 l-2.5e+1 0",
		PathSpec{
			{Kind: MoveTo, Args: []float64{100, 0.1}},
			{Kind: LineTo, Relative: true, Args: []float64{-25, 0}},
		},
	},
	{
		"horizontal and vertical lines",
		"M0 0h10 5v-5H0V0z",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: HorizontalLineTo, Relative: true, Args: []float64{10, 5}},
			{Kind: VerticalLineTo, Relative: true, Args: []float64{-5}},
			{Kind: HorizontalLineTo, Args: []float64{0}},
			{Kind: VerticalLineTo, Args: []float64{0}},
			{Kind: ClosePath, Relative: true},
		},
	},
	{
		"cubic and smooth cubic",
		"M0,0 C1,2 3,4 5,6 S7,8 9,10",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: CubicBezierTo, Args: []float64{1, 2, 3, 4, 5, 6}},
			{Kind: SmoothCubicTo, Args: []float64{7, 8, 9, 10}},
		},
	},
	{
		"quadratic and smooth quadratic",
		"M0 0Q1 1 2 0T4 0 6 0",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: QuadraticBezierTo, Args: []float64{1, 1, 2, 0}},
			{Kind: SmoothQuadraticTo, Args: []float64{4, 0, 6, 0}},
		},
	},
	{
		"arc",
		"M0,0 A5,5 30 1,0 10,10",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: ArcTo, Args: []float64{5, 5, 30, 1, 0, 10, 10}},
		},
	},
	{
		"arc with packed flags",
		"M0,0a5 5 0 0010 10",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: ArcTo, Relative: true, Args: []float64{5, 5, 0, 0, 0, 10, 10}},
		},
	},
	{
		"several subpaths",
		"M0,0 L1,1 Z M5,5 L6,6",
		PathSpec{
			{Kind: MoveTo, Args: []float64{0, 0}},
			{Kind: LineTo, Args: []float64{1, 1}},
			{Kind: ClosePath},
			{Kind: MoveTo, Args: []float64{5, 5}},
			{Kind: LineTo, Args: []float64{6, 6}},
		},
	},
}

func TestParsePath(t *testing.T) {
	for _, test := range pathTests {
		t.Run(test.Description, func(t *testing.T) {
			spec, err := ParsePath(test.D)
			require.NoError(t, err)
			if diff := cmp.Diff(test.Want, spec); diff != "" {
				t.Fatalf("ParsePath(%q) (-want +got):\n%s", test.D, diff)
			}
		})
	}
}

type PathErrorTest struct {
	Description string
	D           string
	Err         error
	Offset      int
}

var pathErrorTests = []PathErrorTest{
	{"no moveto", "L10,10", ErrMissingMoveto, 0},
	{"no moveto after whitespace", "  l1,1", ErrMissingMoveto, 2},
	{"moveto without arguments", "M", ErrEmptyCommandArguments, 0},
	{"lineto without arguments", "M0,0 L", ErrEmptyCommandArguments, 5},
	{"unknown command", "M0,0 X1", ErrUnknownPathCommand, 5},
	{"odd coordinate", "M0,0 L1", ErrIncompleteArguments, 7},
	{"short cubic", "M0,0 C1,1 2,2", ErrIncompleteArguments, 13},
	{"negative radius", "M0,0 A-5,5 0 0 0 1 1", ErrNegativeRadius, 6},
	{"bad flag", "M0,0 A5,5 0 2 0 1 1", ErrMalformedNumber, 12},
	{"overflowing number", "M1e999,0", ErrMalformedNumber, 1},
}

func TestParsePathErrors(t *testing.T) {
	for _, test := range pathErrorTests {
		t.Run(test.Description, func(t *testing.T) {
			_, err := ParsePath(test.D)
			require.Error(t, err)
			require.True(t, xerrors.Is(err, test.Err), "got %v", err)

			var perr *ParseError
			require.True(t, xerrors.As(err, &perr))
			require.Equal(t, test.Offset, perr.Offset)
			require.Equal(t, test.D, perr.Input)
		})
	}
}

func TestParseErrorFragment(t *testing.T) {
	_, err := ParsePath("M0,0 X1 2 3")
	var perr *ParseError
	require.True(t, xerrors.As(err, &perr))
	require.Equal(t, "X1 2 3", perr.Fragment())
	require.Equal(t, `unknown path command at offset 5 near "X1 2 3"`, perr.Error())

	long := &ParseError{Err: ErrMalformedNumber, Input: "M0,0 L" + string(make([]byte, 100)), Offset: 0}
	require.Len(t, long.Fragment(), fragmentLen)
}

func TestPathSpecString(t *testing.T) {
	for _, d := range []string{
		"M0,0 L10,0 Z",
		"m1.5,-2 c1,2,3,4,5,6 s7,8,9,10",
		"M0,0 A5,5,30,1,0,10,10 h3 V-0.25 z",
	} {
		spec, err := ParsePath(d)
		require.NoError(t, err)
		require.Equal(t, d, spec.String())

		again, err := ParsePath(spec.String())
		require.NoError(t, err)
		require.Equal(t, spec, again)
	}
}

func TestCommandGroups(t *testing.T) {
	spec, err := ParsePath("M0,0 C1,2 3,4 5,6 7,8 9,10 11,12 Z")
	require.NoError(t, err)
	c := spec[1]
	require.Equal(t, 2, c.Groups())
	require.Equal(t, []float64{7, 8, 9, 10, 11, 12}, c.Group(1))
	require.Equal(t, 0, spec[2].Groups())
	require.Equal(t, "curveto", c.Kind.String())
	require.Equal(t, byte('c'), c.Kind.Letter(true))
}
