package svgtiles

import (
	"strconv"
	"testing"

	"github.com/cheekybits/is"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

// coarse accepts any curve as flat so the control polygon comes out as is.
var coarse = Flattener{Tolerance: 1000}

func mustParsePath(t *testing.T, d string) PathSpec {
	t.Helper()
	spec, err := ParsePath(d)
	require.NoError(t, err)
	return spec
}

type FlattenTest struct {
	Description string
	D           string
	Transform   Matrix
	Want        []LineSegment
}

var flattenTests = []FlattenTest{
	{
		"closed square",
		"M0,0 L10,0 L10,10 Z",
		Identity(),
		[]LineSegment{
			{Tuple{0, 0}, Tuple{10, 0}},
			{Tuple{10, 0}, Tuple{10, 10}},
			{Tuple{10, 10}, Tuple{0, 0}},
		},
	},
	{
		"relative commands",
		"m1,1 l2,0 0,2 z",
		Identity(),
		[]LineSegment{
			{Tuple{1, 1}, Tuple{3, 1}},
			{Tuple{3, 1}, Tuple{3, 3}},
			{Tuple{3, 3}, Tuple{1, 1}},
		},
	},
	{
		"moveto pairs draw lines and repeats are dropped",
		"M0,0 5,0 5,0 5,5",
		Identity(),
		[]LineSegment{
			{Tuple{0, 0}, Tuple{5, 0}},
			{Tuple{5, 0}, Tuple{5, 5}},
		},
	},
	{
		"horizontal and vertical",
		"M1,1 h2 v3 H0 V0",
		Identity(),
		[]LineSegment{
			{Tuple{1, 1}, Tuple{3, 1}},
			{Tuple{3, 1}, Tuple{3, 4}},
			{Tuple{3, 4}, Tuple{0, 4}},
			{Tuple{0, 4}, Tuple{0, 0}},
		},
	},
	{
		"close at the start point draws nothing",
		"M0,0 L1,0 L0,0 Z",
		Identity(),
		[]LineSegment{
			{Tuple{0, 0}, Tuple{1, 0}},
			{Tuple{1, 0}, Tuple{0, 0}},
		},
	},
	{
		"close returns to the latest moveto",
		"M0,0 L1,0 M5,5 L6,5 Z",
		Identity(),
		[]LineSegment{
			{Tuple{0, 0}, Tuple{1, 0}},
			{Tuple{5, 5}, Tuple{6, 5}},
			{Tuple{6, 5}, Tuple{5, 5}},
		},
	},
	{
		"transform applies to output",
		"M0,0 L1,0",
		Translate(10, 0).Mul(Scale(2, 2)),
		[]LineSegment{
			{Tuple{10, 0}, Tuple{12, 0}},
		},
	},
	{
		"degenerate cubic",
		"M1,1 C1,1 1,1 1,1",
		Identity(),
		nil,
	},
}

func TestFlatten(t *testing.T) {
	for _, test := range flattenTests {
		t.Run(test.Description, func(t *testing.T) {
			segs, err := Flatten(test.Transform, mustParsePath(t, test.D))
			require.NoError(t, err)
			if diff := cmp.Diff(test.Want, segs, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatalf("Flatten(%q) (-want +got):\n%s", test.D, diff)
			}
		})
	}
}

func TestFlattenEmpty(t *testing.T) {
	is := is.New(t)
	segs, err := Flatten(Identity(), nil)
	is.NoErr(err)
	is.Equal(len(segs), 0)
}

func checkContinuous(t *testing.T, segs []LineSegment, from, to Tuple) {
	t.Helper()
	require.NotEmpty(t, segs)
	require.Equal(t, from, segs[0].P0)
	require.Equal(t, to, segs[len(segs)-1].P1)
	for i, s := range segs {
		require.NotEqual(t, s.P0, s.P1, "segment %d has zero length", i)
		if i > 0 {
			require.Equal(t, segs[i-1].P1, s.P0, "gap before segment %d", i)
		}
	}
}

func TestFlattenCubic(t *testing.T) {
	spec := mustParsePath(t, "M0,0 C0,10 10,10 10,0")

	segs, err := coarse.Flatten(Identity(), spec)
	require.NoError(t, err)
	require.Equal(t, []LineSegment{
		{Tuple{0, 0}, Tuple{0, 10}},
		{Tuple{0, 10}, Tuple{10, 10}},
		{Tuple{10, 10}, Tuple{10, 0}},
	}, segs)

	segs, err = Flatten(Identity(), spec)
	require.NoError(t, err)
	require.Greater(t, len(segs), 3)
	checkContinuous(t, segs, Tuple{0, 0}, Tuple{10, 0})
	for _, s := range segs {
		for _, p := range []Tuple{s.P0, s.P1} {
			require.True(t, p[0] >= 0 && p[0] <= 10 && p[1] >= 0 && p[1] <= 10, "%v outside hull", p)
		}
	}
}

func TestFlattenToleranceIsInOutputSpace(t *testing.T) {
	is := is.New(t)
	spec := mustParsePath(t, "M0,0 C0,10 10,10 10,0")

	small, err := Flatten(Scale(0.001, 0.001), spec)
	is.NoErr(err)
	is.Equal(len(small), 3)

	large, err := Flatten(Scale(10, 10), spec)
	is.NoErr(err)
	full, err := Flatten(Identity(), spec)
	is.NoErr(err)
	is.True(len(large) > len(full))
}

func TestFlattenClosedCubic(t *testing.T) {
	segs, err := Flatten(Identity(), mustParsePath(t, "M0,0 C10,0 10,10 0,0"))
	require.NoError(t, err)
	checkContinuous(t, segs, Tuple{0, 0}, Tuple{0, 0})
}

func TestFlattenRecursionLimit(t *testing.T) {
	is := is.New(t)
	spec := mustParsePath(t, "M0,0 L1,1 C0,100 100,100 100,0")
	_, err := Flattener{MaxDepth: 1}.Flatten(Identity(), spec)
	is.True(xerrors.Is(err, ErrFlattenRecursionLimit))

	_, err = Flattener{}.Flatten(Identity(), spec)
	is.NoErr(err)
}

func TestFlattenQuadratic(t *testing.T) {
	segs, err := coarse.Flatten(Identity(), mustParsePath(t, "M0,0 Q5,10 10,0"))
	require.NoError(t, err)
	want := []LineSegment{
		{Tuple{0, 0}, Tuple{10.0 / 3, 20.0 / 3}},
		{Tuple{10.0 / 3, 20.0 / 3}, Tuple{20.0 / 3, 20.0 / 3}},
		{Tuple{20.0 / 3, 20.0 / 3}, Tuple{10, 0}},
	}
	if diff := cmp.Diff(want, segs, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFlattenSmoothCurves(t *testing.T) {
	for _, test := range []FlattenTest{
		{
			"smooth cubic reflects the previous control point",
			"M0,0 C0,1 1,1 1,0 S2,-1 2,0",
			Identity(),
			[]LineSegment{
				{Tuple{0, 0}, Tuple{0, 1}},
				{Tuple{0, 1}, Tuple{1, 1}},
				{Tuple{1, 1}, Tuple{1, 0}},
				{Tuple{1, 0}, Tuple{1, -1}},
				{Tuple{1, -1}, Tuple{2, -1}},
				{Tuple{2, -1}, Tuple{2, 0}},
			},
		},
		{
			"smooth cubic after a line starts at the current point",
			"M0,0 L1,0 S2,1 3,0",
			Identity(),
			[]LineSegment{
				{Tuple{0, 0}, Tuple{1, 0}},
				{Tuple{1, 0}, Tuple{2, 1}},
				{Tuple{2, 1}, Tuple{3, 0}},
			},
		},
		{
			"smooth quadratic reflects the previous control point",
			"M0,0 Q1,1 2,0 T4,0",
			Identity(),
			[]LineSegment{
				{Tuple{0, 0}, Tuple{2.0 / 3, 2.0 / 3}},
				{Tuple{2.0 / 3, 2.0 / 3}, Tuple{4.0 / 3, 2.0 / 3}},
				{Tuple{4.0 / 3, 2.0 / 3}, Tuple{2, 0}},
				{Tuple{2, 0}, Tuple{8.0 / 3, -2.0 / 3}},
				{Tuple{8.0 / 3, -2.0 / 3}, Tuple{10.0 / 3, -2.0 / 3}},
				{Tuple{10.0 / 3, -2.0 / 3}, Tuple{4, 0}},
			},
		},
	} {
		t.Run(test.Description, func(t *testing.T) {
			segs, err := coarse.Flatten(test.Transform, mustParsePath(t, test.D))
			require.NoError(t, err)
			if diff := cmp.Diff(test.Want, segs, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenArcs(t *testing.T) {
	is := is.New(t)
	spec := mustParsePath(t, "M0,0 A5,5 0 0 1 10,0")

	logs := observeLogs(t, zapcore.WarnLevel)
	segs, err := Flatten(Identity(), spec)
	is.NoErr(err)
	is.Equal(segs, []LineSegment{{Tuple{0, 0}, Tuple{10, 0}}})
	is.Equal(logs.FilterMessage("drawing elliptical arc as a straight line").Len(), 1)

	_, err = Flattener{Arcs: ArcError}.Flatten(Identity(), spec)
	is.True(xerrors.Is(err, ErrUnsupportedArc))

	segs, err = Flattener{Arcs: ArcError}.Flatten(Identity(), mustParsePath(t, "M0,0 A0,5 0 0 1 10,0"))
	is.NoErr(err)
	is.Equal(len(segs), 1)
}

func TestParseArcPolicy(t *testing.T) {
	is := is.New(t)
	for _, p := range []ArcPolicy{ArcLine, ArcError} {
		got, err := ParseArcPolicy(p.String())
		is.NoErr(err)
		is.Equal(got, p)
	}
	_, err := ParseArcPolicy("curve")
	is.True(xerrors.Is(err, ErrInvalidConfig))
}

func TestFlattenPreservesPrintedCoordinates(t *testing.T) {
	d := "M0.1234,5.5 L-3.25,7 12.0001,-0.5 Z"
	segs, err := Flatten(Identity(), mustParsePath(t, d))
	require.NoError(t, err)
	require.Len(t, segs, 3)

	want := []Tuple{{0.1234, 5.5}, {-3.25, 7}, {12.0001, -0.5}}
	for i, s := range segs {
		require.Equal(t, want[i], s.P0)
		for j, v := range s.P0 {
			printed, err := strconv.ParseFloat(FormatCoord(v), 64)
			require.NoError(t, err)
			require.Equal(t, want[i][j], printed)
		}
	}
}
