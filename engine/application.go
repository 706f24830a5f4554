package engine

// ApplicationConfig controls the frame loop.
type ApplicationConfig struct {
	// The application name, used in log output.
	Name string
	// Frames per second the loop aims for when LimitFrames is set.
	TargetFPS float64
	// Sleep away the remainder of each frame instead of spinning.
	LimitFrames bool
	// Stop after this many frames. Zero runs until the context is cancelled.
	MaxFrames uint64
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Clay",
		TargetFPS:   60,
		LimitFrames: true,
	}
}
