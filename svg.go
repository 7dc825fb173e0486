package svgtiles

import (
	"encoding/xml"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/xerrors"
)

const (
	inkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"
	tileLabelPrefix   = "tile:"
)

// Svg holds the tiles found in an SVG document, in document order.
type Svg struct {
	Name  string
	Tiles []*Tile
}

// frame is the state pushed for every open element.
type frame struct {
	xf   Matrix
	tile *Tile
}

// svgWalker turns the element stream of a document into tiles. The frame
// stack always holds one entry per open element plus the document root.
type svgWalker struct {
	svg    *Svg
	colors map[string]Bucket
	strict bool
	stack  []frame
}

// ParseSvg parses an SVG string into its tiles.
func ParseSvg(str string, name string, cfg Config) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, cfg)
}

// ParseSvgFromReader parses an SVG document from an io.Reader. Groups
// labelled "tile:<name>" become tiles; inside them the first rect fixes the
// tile frame and stroked shapes are sorted into buckets by colour.
func ParseSvgFromReader(r io.Reader, name string, cfg Config) (*Svg, error) {
	colors, err := cfg.ColorTable()
	if err != nil {
		return nil, err
	}
	w := &svgWalker{
		svg:    &Svg{Name: name},
		colors: colors,
		strict: cfg.Strict,
		stack:  []frame{{xf: Identity()}},
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("ParseSvg %s: %w", name, err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if err := w.startElement(tok); err != nil {
				return nil, xerrors.Errorf("ParseSvg %s: %w", name, err)
			}
		case xml.EndElement:
			if len(w.stack) > 1 {
				w.stack = w.stack[:len(w.stack)-1]
			}
		}
	}

	if err := w.svg.nameTiles(); err != nil {
		return nil, xerrors.Errorf("ParseSvg %s: %w", name, err)
	}
	return w.svg, nil
}

// elementAttrs indexes the attributes of one element by local name.
type elementAttrs map[string]string

func newElementAttrs(start xml.StartElement) (elementAttrs, string) {
	attrs := make(elementAttrs, len(start.Attr))
	label := ""
	for _, a := range start.Attr {
		if a.Name.Local == "label" && (a.Name.Space == inkscapeNamespace || a.Name.Space == "inkscape") {
			label = a.Value
			continue
		}
		if a.Name.Space == "" {
			attrs[a.Name.Local] = a.Value
		}
	}
	return attrs, label
}

func (w *svgWalker) startElement(start xml.StartElement) error {
	attrs, label := newElementAttrs(start)
	element := start.Name.Local
	id := attrs["id"]
	top := w.stack[len(w.stack)-1]

	xf := top.xf
	if s, ok := attrs["transform"]; ok {
		m, err := ParseTransform(s)
		if err != nil {
			if w.strict {
				return xerrors.Errorf("%s %q transform: %w", element, id, err)
			}
			Logger().Warn("ignoring invalid transform",
				zap.String("element", element), zap.String("id", id), zap.Error(err))
			m = Identity()
		}
		xf = xf.Mul(m)
	}

	tile := top.tile
	switch {
	case strings.HasPrefix(label, tileLabelPrefix):
		if tile != nil {
			Logger().Warn("nested tiles", zap.String("outer", tile.Label), zap.String("inner", label))
		}
		tile = &Tile{Label: strings.TrimPrefix(label, tileLabelPrefix)}
		w.svg.Tiles = append(w.svg.Tiles, tile)
	case tile != nil && element == "rect":
		if err := w.referenceRect(tile, xf, attrs); err != nil {
			return err
		}
	case tile != nil:
		if err := w.shape(tile, xf, element, attrs); err != nil {
			return err
		}
	}

	w.stack = append(w.stack, frame{xf: xf, tile: tile})
	return nil
}

func (w *svgWalker) referenceRect(tile *Tile, xf Matrix, attrs elementAttrs) error {
	r, err := parseRect(attrs)
	if err != nil {
		return xerrors.Errorf("tile %q: rect %q: %w", tile.Label, attrs["id"], err)
	}
	if tile.HasFrame {
		Logger().Warn("multiple rects in tile, using the last one", zap.String("tile", tile.Label))
	}
	tile.Frame = r.bounds(xf)
	tile.HasFrame = true
	return nil
}

func (w *svgWalker) shape(tile *Tile, xf Matrix, element string, attrs elementAttrs) error {
	conv, ok := shapeConverters[element]
	if !ok {
		return nil
	}
	id := attrs["id"]

	color := strokeColor(attrs["style"], attrs["stroke"])
	bucket, ok := w.colors[color]
	if !ok {
		Logger().Warn("unknown stroke color, skipping element",
			zap.String("tile", tile.Label), zap.String("element", element),
			zap.String("id", id), zap.String("color", color))
		return nil
	}

	spec, err := conv(attrs)
	if err != nil {
		if w.strict {
			return xerrors.Errorf("tile %q: %s %q: %w", tile.Label, element, id, err)
		}
		Logger().Warn("skipping element with invalid geometry",
			zap.String("tile", tile.Label), zap.String("element", element),
			zap.String("id", id), zap.Error(err))
		return nil
	}
	if len(spec) == 0 {
		return nil
	}
	tile.add(bucket, Shape{ID: id, Element: element, Transform: xf, Spec: spec})
	return nil
}

// shapeConverters turn the geometry attributes of an element into path
// commands.
var shapeConverters = map[string]func(elementAttrs) (PathSpec, error){
	"path": func(attrs elementAttrs) (PathSpec, error) {
		return ParsePath(attrs["d"])
	},
	"line":     lineSpec,
	"polyline": func(attrs elementAttrs) (PathSpec, error) { return polySpec(attrs["points"], false) },
	"polygon":  func(attrs elementAttrs) (PathSpec, error) { return polySpec(attrs["points"], true) },
	"circle":   circleSpec,
	"ellipse":  ellipseSpec,
}
