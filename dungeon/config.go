package dungeon

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dungeon/corridor"
	"github.com/katalvlaran/dungeon/layout"
)

// BoxDist configures one box class of the sampler.
type BoxDist struct {
	// Normal selects a normal distribution (A = mean, B = stddev); otherwise
	// edges are uniform integers in [A, B].
	Normal     bool    `yaml:"normal"`
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	RatioLimit float64 `yaml:"ratio_limit"`
}

// Config is the immutable snapshot of every generation parameter. Generate
// reads it and never writes it; re-running after a change is up to the caller.
type Config struct {
	Seed int64 `yaml:"seed"`

	// Sampling.
	UseRectRegion            bool    `yaml:"use_rect_region"`
	RadiusX                  float64 `yaml:"radius_x"`
	RadiusY                  float64 `yaml:"radius_y"`
	NumBox                   int     `yaml:"num_box"`
	MaxIteration             int     `yaml:"max_iteration"`
	SmallBoxProb             float64 `yaml:"small_box_prob"`
	SmallBox                 BoxDist `yaml:"small_box"`
	LargeBox                 BoxDist `yaml:"large_box"`
	LargeBoxRadiusMultiplier float64 `yaml:"large_box_radius_multiplier"`

	// Map and rooms.
	MapWidth      int  `yaml:"map_width"`
	MapHeight     int  `yaml:"map_height"`
	NumRooms      int  `yaml:"num_rooms"`
	AllowTouching bool `yaml:"allow_touching"`

	// Connections and corridors.
	AddBackProb         float64 `yaml:"add_back_prob"`
	OverlapPadding      int     `yaml:"overlap_padding"`
	AddBothDirection    bool    `yaml:"add_both_direction"`
	FirstHorizontalProb float64 `yaml:"first_horizontal_prob"`
	MaxRoomSize         int     `yaml:"max_room_size"`
}

// DefaultConfig returns a configuration that produces a medium dungeon.
//
//	Seed                     = 42
//	region                   = ellipse, radii 10×10
//	NumBox / MaxIteration    = 100 / 10000
//	SmallBoxProb             = 0.9
//	SmallBox                 = uniform [1,4], ratio ≤ 3
//	LargeBox                 = uniform [7,10], ratio ≤ 3
//	LargeBoxRadiusMultiplier = 0.66
//	Map                      = 64×64, 12 rooms, no touching
//	AddBackProb              = 0.1
//	OverlapPadding           = 3
//	FirstHorizontalProb      = 0.5
//	MaxRoomSize              = 16
func DefaultConfig() Config {
	return Config{
		Seed:                     42,
		RadiusX:                  10,
		RadiusY:                  10,
		NumBox:                   100,
		MaxIteration:             10000,
		SmallBoxProb:             0.9,
		SmallBox:                 BoxDist{A: 1, B: 4, RatioLimit: 3},
		LargeBox:                 BoxDist{A: 7, B: 10, RatioLimit: 3},
		LargeBoxRadiusMultiplier: 0.66,
		MapWidth:                 64,
		MapHeight:                64,
		NumRooms:                 12,
		AddBackProb:              0.1,
		OverlapPadding:           3,
		FirstHorizontalProb:      0.5,
		MaxRoomSize:              16,
	}
}

// Validate reports the first structural problem in c. An inverted uniform
// range is not reported here: it is a legal configuration that generates an
// empty dungeon.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius_x", c.RadiusX},
		{"radius_y", c.RadiusY},
		{"small_box.a", c.SmallBox.A},
		{"small_box.b", c.SmallBox.B},
		{"small_box.ratio_limit", c.SmallBox.RatioLimit},
		{"large_box.a", c.LargeBox.A},
		{"large_box.b", c.LargeBox.B},
		{"large_box.ratio_limit", c.LargeBox.RatioLimit},
		{"large_box_radius_multiplier", c.LargeBoxRadiusMultiplier},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fieldErrorf(ErrInvalidValue, f.name, f.v)
		}
	}

	// Box edge parameters must fit the integer draw of a uniform class.
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"small_box.a", c.SmallBox.A},
		{"small_box.b", c.SmallBox.B},
		{"large_box.a", c.LargeBox.A},
		{"large_box.b", c.LargeBox.B},
	} {
		if f.v > layout.MaxUniformEdge {
			return fieldErrorf(ErrInvalidValue, f.name, f.v)
		}
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"small_box_prob", c.SmallBoxProb},
		{"add_back_prob", c.AddBackProb},
		{"first_horizontal_prob", c.FirstHorizontalProb},
	} {
		// Written as a negated range so NaN fails too.
		if !(p.v >= 0 && p.v <= 1) {
			return fieldErrorf(ErrInvalidProbability, p.name, p.v)
		}
	}

	if c.MapWidth <= 0 {
		return fieldErrorf(ErrInvalidMapSize, "map_width", c.MapWidth)
	}
	if c.MapHeight <= 0 {
		return fieldErrorf(ErrInvalidMapSize, "map_height", c.MapHeight)
	}

	for _, n := range []struct {
		name string
		v    int
	}{
		{"num_box", c.NumBox},
		{"max_iteration", c.MaxIteration},
		{"num_rooms", c.NumRooms},
		{"overlap_padding", c.OverlapPadding},
		{"max_room_size", c.MaxRoomSize},
	} {
		if n.v < 0 {
			return fieldErrorf(ErrInvalidCount, n.name, n.v)
		}
	}

	return nil
}

// LoadConfig decodes a YAML document on top of DefaultConfig: keys missing
// from the document keep their default values. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %v", ErrDecodeConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Encode writes c as a YAML document.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("dungeon: encode config: %w", err)
	}

	return enc.Close()
}

// sampleOptions maps the sampling fields onto layout.SampleOptions.
func (c Config) sampleOptions() layout.SampleOptions {
	region := layout.Ellipse
	if c.UseRectRegion {
		region = layout.Rect
	}

	return layout.SampleOptions{
		Region:                   region,
		RadiusX:                  c.RadiusX,
		RadiusY:                  c.RadiusY,
		NumBox:                   c.NumBox,
		MaxIteration:             c.MaxIteration,
		SmallBoxProb:             c.SmallBoxProb,
		Small:                    c.SmallBox.distribution(),
		Large:                    c.LargeBox.distribution(),
		LargeBoxRadiusMultiplier: c.LargeBoxRadiusMultiplier,
	}
}

// corridorOptions maps the routing fields onto corridor.Options.
func (c Config) corridorOptions() corridor.Options {
	return corridor.Options{
		OverlapPadding:      c.OverlapPadding,
		BothDirections:      c.AddBothDirection,
		FirstHorizontalProb: c.FirstHorizontalProb,
	}
}

func (d BoxDist) distribution() layout.Distribution {
	kind := layout.Uniform
	if d.Normal {
		kind = layout.Normal
	}

	return layout.Distribution{Kind: kind, A: d.A, B: d.B, RatioLimit: d.RatioLimit}
}
