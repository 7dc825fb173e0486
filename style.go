package svgtiles

import (
	"strings"

	"golang.org/x/xerrors"
)

// Bucket classifies the geometry of a tile by its stroke colour.
type Bucket int

// Buckets in output order.
const (
	BucketY1 Bucket = iota
	BucketY2
	BucketL1
	BucketL2
	BucketA1
	BucketA2
	numBuckets
)

var bucketNames = [numBuckets]string{"y1", "y2", "l1", "l2", "a1", "a2"}

// Buckets returns every bucket in output order.
func Buckets() []Bucket {
	bs := make([]Bucket, numBuckets)
	for i := range bs {
		bs[i] = Bucket(i)
	}
	return bs
}

func (b Bucket) String() string {
	if b < 0 || b >= numBuckets {
		return "unknown"
	}
	return bucketNames[b]
}

// ParseBucket returns the bucket named s.
func ParseBucket(s string) (Bucket, error) {
	for i, n := range bucketNames {
		if n == s {
			return Bucket(i), nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", s, ErrUnknownBucket)
}

// DefaultColors maps stroke colours to buckets.
func DefaultColors() map[string]Bucket {
	return map[string]Bucket{
		"#800000": BucketY1,
		"#008000": BucketY2,
		"#ff0000": BucketL1,
		"#00ff00": BucketL2,
		"#ff00ff": BucketA1,
		"#00ffff": BucketA2,
	}
}

// splitStyle splits a style attribute such as
// "fill:none;stroke:#ff0000" into its properties.
func splitStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(val)
	}
	return props
}

// strokeColor returns the stroke colour of an element, preferring the
// style property over the presentation attribute, lower-cased.
func strokeColor(style, attr string) string {
	if c, ok := splitStyle(style)["stroke"]; ok && c != "" {
		return strings.ToLower(c)
	}
	return strings.ToLower(strings.TrimSpace(attr))
}
