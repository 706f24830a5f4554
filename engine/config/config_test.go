package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/clay/engine/core"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

const triangleScene = `
log_level = "debug"

[viewport]
width = 800
height = 600

[camera]
projection = "orthographic"
near = 1.0
far = -1.0
left = 1.0
right = -1.0
bottom = -0.75
top = 0.75

[[node]]
name = "triangle"
position = [0.0, 0.0, 0.0]
rotation = [0.0, 0.0, 0.0]
vertices = [[-0.5, -0.5, 0.0], [0.5, -0.5, 0.0], [0.0, 0.5, 0.0]]
uvs = [[0.0, 0.0], [1.0, 0.0], [0.5, 1.0]]

[node.animation]
target_rotation = [0.0, 0.0, 90.0]
duration = 2.0
loop = true

[[node]]
id = "6f1c0f6e-2f5e-4d8a-9a57-3f3c8a4d2b11"
name = "child"
parent = "triangle"
position = [1.0, 0.0, 0.0]
scale = [2.0, 2.0, 2.0]
`

func TestParseScene(t *testing.T) {
	cfg, err := Parse(strings.NewReader(triangleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.LogLevel != "debug" || cfg.Viewport.Width != 800 || cfg.Viewport.Height != 600 {
		t.Fatalf("header = %+v %+v", cfg.LogLevel, cfg.Viewport)
	}
	if cfg.Camera.Projection != ProjectionOrthographic || !cfg.Camera.HasBox() {
		t.Fatalf("camera = %+v", cfg.Camera)
	}
	if cfg.Camera.Left != 1 || cfg.Camera.Right != -1 || cfg.Camera.Near != 1 || cfg.Camera.Far != -1 {
		t.Fatalf("camera box = %+v", cfg.Camera)
	}
	if len(cfg.Nodes) != 2 {
		t.Fatalf("nodes = %d", len(cfg.Nodes))
	}

	tri := cfg.Nodes[0]
	if len(tri.Vertices) != 3 || len(tri.UVs) != 3 || tri.Vertices[2] != [3]float32{0, 0.5, 0} {
		t.Fatalf("triangle geometry = %v %v", tri.Vertices, tri.UVs)
	}
	if tri.Animation == nil || tri.Animation.TargetRotation[2] != 90 || tri.Animation.Duration != 2 || !tri.Animation.Loop {
		t.Fatalf("animation = %+v", tri.Animation)
	}
	if tri.Scale != nil {
		t.Fatalf("unset scale = %v", *tri.Scale)
	}

	child := cfg.Nodes[1]
	if child.Parent != "triangle" || child.Scale == nil || *child.Scale != [3]float32{2, 2, 2} {
		t.Fatalf("child = %+v", child)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	if cfg.LogLevel != want.LogLevel || cfg.Viewport != want.Viewport || cfg.Camera != want.Camera {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "viewport = ["},
		{"unknown key", "colour = \"red\""},
		{"log level", "log_level = \"loud\""},
		{"empty viewport", "[viewport]\nwidth = 0\nheight = 10"},
		{"projection", "[camera]\nprojection = \"fisheye\""},
		{"fov", "[camera]\nfov = 180.0"},
		{"perspective near", "[camera]\nnear = 0.0"},
		{"perspective far", "[camera]\nnear = 10.0\nfar = 1.0"},
		{"ortho planes", "[camera]\nprojection = \"orthographic\"\nnear = 1.0\nfar = 1.0"},
		{"ortho box", "[camera]\nprojection = \"orthographic\"\nnear = 1.0\nfar = -1.0\nleft = 1.0\nright = 1.0\ntop = 1.0"},
		{"nameless node", "[[node]]\nposition = [0.0, 0.0, 0.0]"},
		{"duplicate node", "[[node]]\nname = \"a\"\n[[node]]\nname = \"a\""},
		{"self parent", "[[node]]\nname = \"a\"\nparent = \"a\""},
		{"bad id", "[[node]]\nname = \"a\"\nid = \"not-a-uuid\""},
		{"uv count", "[[node]]\nname = \"a\"\nvertices = [[0.0, 0.0, 0.0]]\nuvs = [[0.0, 0.0], [1.0, 1.0]]"},
		{"animation duration", "[[node]]\nname = \"a\"\n[node.animation]\nduration = 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("err = %v, want %v", err, core.ErrInvalidConfig)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg, err := Parse(strings.NewReader(triangleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Camera != cfg.Camera || len(loaded.Nodes) != len(cfg.Nodes) {
		t.Fatalf("loaded = %+v, want %+v", loaded, cfg)
	}
	if loaded.Nodes[1].ID != cfg.Nodes[1].ID || *loaded.Nodes[1].Scale != *cfg.Nodes[1].Scale {
		t.Fatalf("child = %+v", loaded.Nodes[1])
	}
	if *loaded.Nodes[0].Animation != *cfg.Nodes[0].Animation {
		t.Fatalf("animation = %+v", loaded.Nodes[0].Animation)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want %v", err, os.ErrNotExist)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[viewport]\nwidth = 320\nheight = 240\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs():
			// a truncating write can surface an intermediate empty file first
			if cfg.Viewport.Width == 320 {
				return
			}
		case err := <-w.Errors():
			t.Logf("intermediate error: %v", err)
		case <-timeout:
			t.Fatal("no reload within timeout")
		}
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[camera]\nprojection = \"fisheye\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case <-w.Configs():
		case err := <-w.Errors():
			if errors.Is(err, core.ErrInvalidConfig) {
				return
			}
		case <-timeout:
			t.Fatal("no error within timeout")
		}
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "scene.toml"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err == nil {
		t.Fatal("second Close should fail")
	}
	if _, ok := <-w.Configs(); ok {
		t.Fatal("configs channel still open")
	}
	if _, ok := <-w.Errors(); ok {
		t.Fatal("errors channel still open")
	}
}

func TestExampleIsValid(t *testing.T) {
	cfg := Example()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Camera.Top != float32(1350)/float32(630) || cfg.Camera.Bottom != -cfg.Camera.Top {
		t.Fatalf("camera box = %+v", cfg.Camera)
	}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Parse(Marshal()): %v\n%s", err, data)
	}
	if parsed.Camera != cfg.Camera || len(parsed.Nodes) != 1 {
		t.Fatalf("parsed = %+v", parsed)
	}
}
