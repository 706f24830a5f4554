package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/clay/engine/core"
)

const (
	ProjectionPerspective  = "perspective"
	ProjectionOrthographic = "orthographic"
)

// Config describes a scene file. Angles are in degrees.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Viewport ViewportConfig `toml:"viewport"`
	Camera   CameraConfig   `toml:"camera"`
	Nodes    []NodeConfig   `toml:"node"`
}

type ViewportConfig struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type CameraConfig struct {
	Projection string     `toml:"projection"`
	FOV        float32    `toml:"fov"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	Left       float32    `toml:"left,omitempty"`
	Right      float32    `toml:"right,omitempty"`
	Bottom     float32    `toml:"bottom,omitempty"`
	Top        float32    `toml:"top,omitempty"`
	Position   [3]float32 `toml:"position"`
	Rotation   [3]float32 `toml:"rotation"`
}

type NodeConfig struct {
	ID        string           `toml:"id,omitempty"`
	Name      string           `toml:"name"`
	Parent    string           `toml:"parent,omitempty"`
	Position  [3]float32       `toml:"position"`
	Rotation  [3]float32       `toml:"rotation"`
	Scale     *[3]float32      `toml:"scale,omitempty"`
	Vertices  [][3]float32     `toml:"vertices,omitempty"`
	UVs       [][2]float32     `toml:"uvs,omitempty"`
	Animation *AnimationConfig `toml:"animation,omitempty"`
}

// AnimationConfig slerps a node from its rotation to TargetRotation.
type AnimationConfig struct {
	TargetRotation [3]float32 `toml:"target_rotation"`
	// Duration in seconds.
	Duration float64 `toml:"duration"`
	Loop     bool    `toml:"loop"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			Projection: ProjectionPerspective,
			FOV:        45.0,
			Near:       0.1,
			Far:        1000.0,
		},
	}
}

// Load reads, decodes and validates the scene file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		core.LogError("failed to open config %s: %s", path, err)
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a scene file on top of Default(). Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(r).DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		core.LogError("failed to decode config: %s", err)
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf).SetIndentTables(true)
	if err := encoder.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		core.LogError("failed to encode config: %s", err)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", core.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks values a scene needs to be built. Parent references are
// resolved by the scene itself.
func (c *Config) Validate() error {
	if err := core.ValidLogLevel(c.LogLevel); err != nil {
		return invalid("log_level %q: %s", c.LogLevel, err)
	}
	if c.Viewport.Width == 0 || c.Viewport.Height == 0 {
		return invalid("viewport must be non-empty, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if err := c.Camera.validate(); err != nil {
		return err
	}

	names := make(map[string]struct{}, len(c.Nodes))
	for i := range c.Nodes {
		n := &c.Nodes[i]
		if err := n.validate(); err != nil {
			return err
		}
		if _, ok := names[n.Name]; ok {
			return invalid("duplicate node name %q", n.Name)
		}
		names[n.Name] = struct{}{}
	}
	return nil
}

func (c *CameraConfig) HasBox() bool {
	return c.Left != 0 || c.Right != 0 || c.Bottom != 0 || c.Top != 0
}

func (c *CameraConfig) validate() error {
	switch c.Projection {
	case ProjectionPerspective:
		if c.FOV <= 0 || c.FOV >= 180 {
			return invalid("camera fov must be in (0, 180) degrees, got %f", c.FOV)
		}
		if c.Near <= 0 || c.Far <= c.Near {
			return invalid("camera clip planes must satisfy 0 < near < far, got near=%f far=%f", c.Near, c.Far)
		}
	case ProjectionOrthographic:
		if c.Near == c.Far {
			return invalid("camera near and far must differ, got %f", c.Near)
		}
		if c.HasBox() && (c.Left == c.Right || c.Bottom == c.Top) {
			return invalid("camera box must have non-zero extent, got l=%f r=%f b=%f t=%f", c.Left, c.Right, c.Bottom, c.Top)
		}
	default:
		return invalid("unknown camera projection %q", c.Projection)
	}
	return nil
}

func (n *NodeConfig) validate() error {
	if n.Name == "" {
		return invalid("node without a name")
	}
	if n.ID != "" {
		if _, err := uuid.Parse(n.ID); err != nil {
			return invalid("node %q: id %q: %s", n.Name, n.ID, err)
		}
	}
	if n.Parent == n.Name {
		return invalid("node %q is its own parent", n.Name)
	}
	if len(n.UVs) != 0 && len(n.UVs) != len(n.Vertices) {
		return invalid("node %q: %d uvs for %d vertices", n.Name, len(n.UVs), len(n.Vertices))
	}
	if n.Animation != nil && n.Animation.Duration <= 0 {
		return invalid("node %q: animation duration must be positive, got %f", n.Name, n.Animation.Duration)
	}
	return nil
}
