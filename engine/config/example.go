package config

// Example returns the triangle scene of the desktop sample: a 630x1350
// portrait viewport with a mirrored orthographic box.
func Example() *Config {
	cfg := Default()
	cfg.Viewport = ViewportConfig{Width: 630, Height: 1350}

	aspect := float32(cfg.Viewport.Height) / float32(cfg.Viewport.Width)
	cfg.Camera = CameraConfig{
		Projection: ProjectionOrthographic,
		Near:       1.0,
		Far:        -1.0,
		Left:       1.0,
		Right:      -1.0,
		Bottom:     -aspect,
		Top:        aspect,
	}
	cfg.Nodes = []NodeConfig{
		{
			Name: "triangle",
			Vertices: [][3]float32{
				{-0.5, -0.5, 0.0},
				{0.0, 0.5, 0.0},
				{0.5, -0.5, 0.0},
			},
			UVs: [][2]float32{
				{0.0, 0.0},
				{0.5, 1.0},
				{1.0, 0.0},
			},
			Animation: &AnimationConfig{
				TargetRotation: [3]float32{0.0, 0.0, 180.0},
				Duration:       4.0,
				Loop:           true,
			},
		},
	}
	return cfg
}
