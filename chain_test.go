package svgtiles

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

func TestFormatCoord(t *testing.T) {
	for _, test := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{2, "2"},
		{10, "10"},
		{1.5, "1.5"},
		{-2.50, "-2.5"},
		{0.12346, "0.1235"},
		{1234.56789, "1234.5679"},
		{-0.00001, "0"},
		{0.00004, "0"},
		{-100, "-100"},
	} {
		require.Equal(t, test.want, FormatCoord(test.in), "FormatCoord(%v)", test.in)
	}
}

func TestTupleKey(t *testing.T) {
	is := is.New(t)
	is.Equal(Tuple{1.00001, -0.00002}.Key(), "1,0")
	is.Equal(Tuple{6.5, 9}.Key(), "6.5,9")
}

func TestBuildChains(t *testing.T) {
	chains := BuildChains([]LineSegment{
		{Tuple{0, 0}, Tuple{1, 0}},
		{Tuple{1, 0}, Tuple{1, 1}},
		{Tuple{5, 5}, Tuple{6, 5}},
	})
	require.Equal(t, []Chain{
		{{0, 0}, {1, 0}, {1, 1}},
		{{5, 5}, {6, 5}},
	}, chains)
	require.Equal(t, "0,0, 1,0, 1,1", chains[0].String())
	require.Equal(t, "5,5, 6,5", chains[1].String())
}

func TestBuildChainsJoinsOnPrintedPoints(t *testing.T) {
	chains := BuildChains([]LineSegment{
		{Tuple{0, 0}, Tuple{1.00001, 0}},
		{Tuple{1.00002, 0}, Tuple{2, 0}},
		{Tuple{2.001, 0}, Tuple{3, 0}},
	})
	require.Len(t, chains, 2)
	require.Equal(t, "0,0, 1,0, 2,0", chains[0].String())
	require.Equal(t, "2.001,0, 3,0", chains[1].String())
}

func TestBuildChainsOnlyExtendsTheLastChain(t *testing.T) {
	chains := BuildChains([]LineSegment{
		{Tuple{0, 0}, Tuple{1, 0}},
		{Tuple{5, 5}, Tuple{6, 5}},
		{Tuple{1, 0}, Tuple{2, 0}},
	})
	require.Len(t, chains, 3)
}

func TestBuildChainsEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(len(BuildChains(nil)), 0)
}

func TestChainsFromFlattenedPath(t *testing.T) {
	segs, err := Flatten(Identity(), mustParsePath(t, "M0,0 L10,0 L10,10 Z M20,20 L30,20"))
	require.NoError(t, err)
	chains := BuildChains(segs)
	require.Len(t, chains, 2)
	require.Equal(t, "0,0, 10,0, 10,10, 0,0", chains[0].String())
	require.Equal(t, "20,20, 30,20", chains[1].String())
}
