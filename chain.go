package svgtiles

import (
	"strconv"
	"strings"
)

// coordDecimals is the precision used both to print coordinates and to
// decide whether two chain points are the same.
const coordDecimals = 4

// FormatCoord renders v with four decimals, dropping trailing zeros and a
// trailing decimal point. Values that round to zero print as "0", never
// "-0".
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', coordDecimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Key returns the printed form "x,y" of t.
func (t Tuple) Key() string {
	return FormatCoord(t[0]) + "," + FormatCoord(t[1])
}

// Chain is a polyline: consecutive points are joined by a flattened segment.
type Chain []Tuple

// String renders c as a comma separated list of coordinates,
// "x0,y0, x1,y1, ...".
func (c Chain) String() string {
	keys := make([]string, len(c))
	for i, p := range c {
		keys[i] = p.Key()
	}
	return strings.Join(keys, ", ")
}

// BuildChains joins segments into polylines. A segment extends the chain
// built so far when its start prints the same as that chain's end point;
// otherwise it starts a new chain. Segments are taken in the given order,
// so connected segments must arrive one after another to share a chain.
func BuildChains(segs []LineSegment) []Chain {
	var (
		chains []Chain
		endKey string
	)
	for _, s := range segs {
		startKey := s.P0.Key()
		n := len(chains)
		if n > 0 && startKey == endKey {
			chains[n-1] = append(chains[n-1], s.P1)
		} else {
			chains = append(chains, Chain{s.P0, s.P1})
		}
		endKey = s.P1.Key()
	}
	return chains
}
