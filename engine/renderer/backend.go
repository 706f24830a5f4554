package renderer

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/math"
)

// UniformSink receives column-major matrices by uniform name.
type UniformSink interface {
	SetMat4(name string, data [16]float32) error
}

type RendererBackend interface {
	UniformSink
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
}

/** @brief A single uniform upload captured by a RecordingSink. */
type Upload struct {
	Frame uint64
	Name  string
	Data  [16]float32
}

// RecordingSink keeps every upload in order. Safe for concurrent use.
type RecordingSink struct {
	mu      sync.Mutex
	frame   uint64
	inFrame bool
	uploads []Upload
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) BeginFrame(deltaTime float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFrame {
		return fmt.Errorf("frame %d already in progress", s.frame)
	}
	s.frame++
	s.inFrame = true
	return nil
}

func (s *RecordingSink) EndFrame(deltaTime float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inFrame {
		return fmt.Errorf("no frame in progress")
	}
	s.inFrame = false
	return nil
}

func (s *RecordingSink) SetMat4(name string, data [16]float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = append(s.uploads, Upload{Frame: s.frame, Name: name, Data: data})
	return nil
}

// Frames returns the number of frames begun so far.
func (s *RecordingSink) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *RecordingSink) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Upload, len(s.uploads))
	copy(out, s.uploads)
	return out
}

// FrameUploads returns the uploads of a single frame, in order.
func (s *RecordingSink) FrameUploads(frame uint64) []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Upload
	for _, u := range s.uploads {
		if u.Frame == frame {
			out = append(out, u)
		}
	}
	return out
}

// Last returns the most recent upload with the given name.
func (s *RecordingSink) Last(name string) (Upload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.uploads) - 1; i >= 0; i-- {
		if s.uploads[i].Name == name {
			return s.uploads[i], true
		}
	}
	return Upload{}, false
}

func (s *RecordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = 0
	s.inFrame = false
	s.uploads = nil
}

// LogSink writes every upload to the engine log at debug level.
type LogSink struct {
	frame uint64
}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) BeginFrame(deltaTime float64) error {
	s.frame++
	core.LogDebug("begin frame %d (dt=%fs)", s.frame, deltaTime)
	return nil
}

func (s *LogSink) EndFrame(deltaTime float64) error {
	core.LogDebug("end frame %d", s.frame)
	return nil
}

func (s *LogSink) SetMat4(name string, data [16]float32) error {
	core.LogDebug("set_mat4 %s\n%s", name, math.Mat4{Data: data})
	return nil
}
