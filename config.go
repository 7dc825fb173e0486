package svgtiles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// DefaultVariable is the name the output table is assigned to.
const DefaultVariable = "window.VectorTilesLib"

// Config controls extraction and output.
type Config struct {
	// TileWidth and TileHeight are the size of the output rectangle each
	// tile's reference rect is mapped onto.
	TileWidth  float64 `toml:"tile_width" yaml:"tile_width"`
	TileHeight float64 `toml:"tile_height" yaml:"tile_height"`

	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
	MaxDepth  int     `toml:"max_depth" yaml:"max_depth"`
	// Arcs is "line" or "error", see ArcPolicy.
	Arcs string `toml:"arcs" yaml:"arcs"`

	// Strict makes invalid path data abort extraction instead of skipping
	// the element.
	Strict bool `toml:"strict" yaml:"strict"`

	Variable string `toml:"variable" yaml:"variable"`
	Workers  int    `toml:"workers" yaml:"workers"`

	// Colors maps stroke colours to bucket names. When empty the
	// DefaultColors table is used.
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// DefaultConfig returns the settings for 13x9 tiles flattened to 0.02.
func DefaultConfig() Config {
	return Config{
		TileWidth:  13,
		TileHeight: 9,
		Tolerance:  DefaultTolerance,
		MaxDepth:   DefaultMaxDepth,
		Arcs:       ArcLine.String(),
		Variable:   DefaultVariable,
		Workers:    4,
	}
}

// LoadConfig reads a TOML or YAML file, picked by extension, over the
// defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ReadConfig is LoadConfig without the final Validate, for callers that
// apply their own overrides first.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, xerrors.Errorf("reading config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, xerrors.Errorf("config %s: unsupported format: %w", path, ErrInvalidConfig)
	}
	if err != nil {
		return cfg, xerrors.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that cfg can drive an extraction.
func (cfg Config) Validate() error {
	if !(cfg.TileWidth > 0) || !(cfg.TileHeight > 0) {
		return xerrors.Errorf("tile size %gx%g: %w", cfg.TileWidth, cfg.TileHeight, ErrInvalidConfig)
	}
	if !(cfg.Tolerance > 0) {
		return xerrors.Errorf("tolerance %g: %w", cfg.Tolerance, ErrInvalidConfig)
	}
	if cfg.MaxDepth <= 0 {
		return xerrors.Errorf("max depth %d: %w", cfg.MaxDepth, ErrInvalidConfig)
	}
	if _, err := ParseArcPolicy(cfg.Arcs); err != nil {
		return err
	}
	if _, err := cfg.ColorTable(); err != nil {
		return err
	}
	return nil
}

// Flattener returns the flattener configured by cfg.
func (cfg Config) Flattener() (Flattener, error) {
	arcs, err := ParseArcPolicy(cfg.Arcs)
	if err != nil {
		return Flattener{}, err
	}
	return Flattener{Tolerance: cfg.Tolerance, MaxDepth: cfg.MaxDepth, Arcs: arcs}, nil
}

// ColorTable resolves cfg.Colors to buckets.
func (cfg Config) ColorTable() (map[string]Bucket, error) {
	if len(cfg.Colors) == 0 {
		return DefaultColors(), nil
	}
	table := make(map[string]Bucket, len(cfg.Colors))
	for color, name := range cfg.Colors {
		b, err := ParseBucket(name)
		if err != nil {
			return nil, xerrors.Errorf("color %s: %w", color, err)
		}
		table[strings.ToLower(color)] = b
	}
	return table, nil
}
