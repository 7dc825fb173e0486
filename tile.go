package svgtiles

import (
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Shape is one element collected into a tile: its path commands and the
// transform from its own frame to page space.
type Shape struct {
	ID        string
	Element   string
	Transform Matrix
	Spec      PathSpec
}

// Tile is a labelled group of the document whose geometry becomes one
// entry of the output table.
type Tile struct {
	// Label is the text after "tile:" in the group label.
	Label string
	// Name is Label plus the bucket suffixes, set once the document has
	// been read.
	Name string
	// Frame is the page-space bounds of the reference rect.
	Frame    Box
	HasFrame bool
	Shapes   [numBuckets][]Shape
}

func (t *Tile) add(b Bucket, s Shape) {
	t.Shapes[b] = append(t.Shapes[b], s)
}

// suffixedName appends one suffix per bucket pair: none when both buckets
// are empty, "1" when only the first one has shapes, "2" otherwise.
func (t *Tile) suffixedName() string {
	name := t.Label
	for _, pair := range []struct {
		prefix        string
		first, second Bucket
	}{
		{"-l", BucketL1, BucketL2},
		{"-y", BucketY1, BucketY2},
		{"-a", BucketA1, BucketA2},
	} {
		switch {
		case len(t.Shapes[pair.first]) == 0 && len(t.Shapes[pair.second]) == 0:
		case len(t.Shapes[pair.second]) == 0:
			name += pair.prefix + "1"
		default:
			name += pair.prefix + "2"
		}
	}
	return name
}

// nameTiles sets the final name of every tile and rejects duplicates.
func (s *Svg) nameTiles() error {
	seen := make(map[string]bool, len(s.Tiles))
	for _, t := range s.Tiles {
		t.Name = t.suffixedName()
		if seen[t.Name] {
			return xerrors.Errorf("%q: %w", t.Name, ErrDuplicateTile)
		}
		seen[t.Name] = true
	}
	return nil
}

// TileChains is the flattened geometry of one tile.
type TileChains struct {
	Name    string
	Buckets [numBuckets][]Chain
}

// Chains fits the tile frame onto a w by h rectangle and flattens every
// bucket into chains. Segments of one bucket are chained in document order.
// With strict unset, shapes that fail to flatten are logged and left out.
func (t *Tile) Chains(fl Flattener, w, h float64, strict bool) (TileChains, error) {
	tc := TileChains{Name: t.Name}
	if !t.HasFrame {
		return tc, xerrors.Errorf("tile %q: %w", t.Name, ErrMissingReferenceRect)
	}
	fit, err := FitRect(t.Frame, w, h)
	if err != nil {
		return tc, xerrors.Errorf("tile %q: fitting reference rect: %w", t.Name, err)
	}

	for b, shapes := range t.Shapes {
		var segs []LineSegment
		for _, s := range shapes {
			lines, err := fl.Flatten(fit.Mul(s.Transform), s.Spec)
			if err != nil {
				if strict {
					return tc, xerrors.Errorf("tile %q: %s %q: %w", t.Name, s.Element, s.ID, err)
				}
				Logger().Warn("skipping element that failed to flatten",
					zap.String("tile", t.Name), zap.String("element", s.Element),
					zap.String("id", s.ID), zap.Error(err))
				continue
			}
			segs = append(segs, lines...)
		}
		tc.Buckets[b] = BuildChains(segs)
	}
	return tc, nil
}
