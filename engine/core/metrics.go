package core

import "github.com/spaghettifunk/clay/engine/containers"

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of frame times and a frames-per-second
// count. The zero value is ready to use.
type Metrics struct {
	msTimes            *containers.RingQueue[float64]
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func (m *Metrics) Update(frameElapsedSeconds float64) {
	if m.msTimes == nil {
		m.msTimes = containers.NewRingQueue[float64](int(AVG_COUNT))
	}

	// Calculate frame ms average over the last AVG_COUNT frames
	frameMS := frameElapsedSeconds * 1000.0
	m.msTimes.Push(frameMS)
	if m.msTimes.IsFull() {
		sum := 0.0
		for _, ms := range m.msTimes.Items() {
			sum += ms
		}
		m.msAvg = sum / float64(AVG_COUNT)
	}

	// Calculate Frames per second.
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}

	// Count all Frames.
	m.frames++
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

// FrameTime is the average frame time in milliseconds over the last AVG_COUNT
// frames. It stays zero until AVG_COUNT frames were recorded.
func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}
