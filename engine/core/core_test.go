package core

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClockWithSource(func() time.Time { return now })

	c.Update()
	if c.Elapsed() != 0 {
		t.Fatal("unstarted clock should not advance")
	}

	c.Start()
	now = now.Add(250 * time.Millisecond)
	c.Update()
	if c.Elapsed() != 250*time.Millisecond {
		t.Fatalf("elapsed = %v", c.Elapsed())
	}

	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	if c.Elapsed() != 250*time.Millisecond {
		t.Fatalf("stopped clock advanced to %v", c.Elapsed())
	}
}

func TestMetricsAveragesFrames(t *testing.T) {
	var m Metrics
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.010)
	}
	if got := m.FrameTime(); got < 9.999 || got > 10.001 {
		t.Fatalf("frame time = %v, want 10ms", got)
	}
	// 1000ms is crossed on frame 101 of 10ms each.
	for i := 0; i < 71; i++ {
		m.Update(0.010)
	}
	if fps := m.FPS(); fps != 100 {
		t.Fatalf("fps = %v, want 100", fps)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	if err := SetLogLevel("bogus"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := SetLogLevel("warn"); err != nil {
		t.Fatal(err)
	}
	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") {
		t.Fatalf("log output = %q", out)
	}
	_ = SetLogLevel("info")
}

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "fatal"} {
		if err := ValidLogLevel(level); err != nil {
			t.Errorf("ValidLogLevel(%q) = %v", level, err)
		}
	}
	if err := ValidLogLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestMetricsRollingAverage(t *testing.T) {
	var m Metrics
	for i := 0; i < int(AVG_COUNT)-1; i++ {
		m.Update(0.010)
	}
	if m.FrameTime() != 0 {
		t.Fatalf("frame time before a full window = %v", m.FrameTime())
	}
	m.Update(0.010)
	for i := 0; i < int(AVG_COUNT)/2; i++ {
		m.Update(0.020)
	}
	if got := m.FrameTime(); got < 14.999 || got > 15.001 {
		t.Fatalf("frame time = %v, want 15ms", got)
	}
}
