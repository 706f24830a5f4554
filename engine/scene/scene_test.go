package scene

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/spaghettifunk/clay/engine/config"
	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/math"
	"github.com/spaghettifunk/clay/engine/renderer"
	"github.com/spaghettifunk/clay/engine/renderer/components"
)

const tolerance = 1e-5

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func parse(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg, err := config.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	return cfg
}

const hierarchy = `
[camera]
projection = "orthographic"
near = -1.0
far = 1.0

[[node]]
name = "child"
parent = "root"
position = [1.0, 0.0, 0.0]

[[node]]
id = "6f1c0f6e-2f5e-4d8a-9a57-3f3c8a4d2b11"
name = "root"
position = [0.0, 2.0, 0.0]
rotation = [0.0, 0.0, 90.0]
vertices = [[0.0, 0.0, 0.0], [1.0, 0.0, 0.0], [0.0, 1.0, 0.0]]
`

func TestFromConfigHierarchy(t *testing.T) {
	s, err := FromConfig(parse(t, hierarchy))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}

	root, ok := s.Node("root")
	if !ok {
		t.Fatal("root not found")
	}
	if root.ID != uuid.MustParse("6f1c0f6e-2f5e-4d8a-9a57-3f3c8a4d2b11") {
		t.Fatalf("root id = %s", root.ID)
	}
	if byID, ok := s.NodeByID(root.ID); !ok || byID != root {
		t.Fatal("NodeByID did not find root")
	}

	child, _ := s.Node("child")
	if child.Parent != root || len(root.Children) != 1 || root.Children[0] != child {
		t.Fatal("child not attached to root")
	}
	if child.ID == uuid.Nil {
		t.Fatal("child has no generated id")
	}

	// root rotates the child's offset by 90 degrees about Z, then lifts it
	origin := child.World().MulVec4(math.NewVec4(0, 0, 0, 1))
	if !origin.Compare(math.NewVec4(0, 3, 0, 1), tolerance) {
		t.Fatalf("child origin = %v", origin)
	}

	if len(root.Vertices) != 3 {
		t.Fatalf("root vertices = %d", len(root.Vertices))
	}
	if !root.Vertices[0].Normal.Compare(math.NewVec3(0, 0, 1), tolerance) {
		t.Fatalf("generated normal = %v", root.Vertices[0].Normal)
	}
	world := root.WorldVertices()
	if !world[1].Compare(math.NewVec4(0, 3, 0, 1), tolerance) {
		t.Fatalf("world vertex = %v", world[1])
	}
}

func TestFromConfigRejectsUnknownParent(t *testing.T) {
	cfg := parse(t, "[[node]]\nname = \"a\"\nparent = \"ghost\"")
	if _, err := FromConfig(cfg); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, core.ErrNotFound)
	}
}

func TestFromConfigRejectsCycle(t *testing.T) {
	cfg := parse(t, `
[[node]]
name = "a"
parent = "b"
[[node]]
name = "b"
parent = "c"
[[node]]
name = "c"
parent = "a"
`)
	if _, err := FromConfig(cfg); !errors.Is(err, ErrCycle) {
		t.Fatalf("err = %v, want %v", err, ErrCycle)
	}
}

func TestSetParentReparents(t *testing.T) {
	s := New(nil)
	for _, name := range []string{"a", "b", "c"} {
		if err := s.AddNode(NewNode(name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SetParent("c", "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetParent("c", "b"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Node("a")
	b, _ := s.Node("b")
	c, _ := s.Node("c")
	if len(a.Children) != 0 || len(b.Children) != 1 || c.Parent != b || c.Transform.Parent != b.Transform {
		t.Fatal("reparenting left stale links")
	}

	if err := s.SetParent("c", ""); err != nil {
		t.Fatal(err)
	}
	if c.Parent != nil || c.Transform.Parent != nil || len(b.Children) != 0 {
		t.Fatal("detach left stale links")
	}

	if err := s.SetParent("a", "a"); !errors.Is(err, ErrCycle) {
		t.Fatalf("self parent err = %v", err)
	}
	if err := s.SetParent("ghost", "a"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("unknown child err = %v", err)
	}
}

func TestAddNodeRejectsDuplicates(t *testing.T) {
	s := New(nil)
	a := NewNode("a")
	if err := s.AddNode(a); err != nil {
		t.Fatal(err)
	}
	if err := s.AddNode(NewNode("a")); !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("duplicate name err = %v", err)
	}
	other := NewNode("b")
	other.ID = a.ID
	if err := s.AddNode(other); !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("duplicate id err = %v", err)
	}
}

func TestAnimationProgress(t *testing.T) {
	once := &Animation{Duration: 2}
	loop := &Animation{Duration: 2, Loop: true}

	tests := []struct {
		elapsed float64
		once    float32
		loop    float32
	}{
		{-1, 0, 0},
		{0, 0, 0},
		{0.5, 0.25, 0.25},
		{2, 1, 1},
		{3, 1, 0.5},
		{4, 1, 0},
		{5, 1, 0.5},
	}
	for _, tt := range tests {
		if got := once.Progress(tt.elapsed); got != tt.once {
			t.Errorf("once.Progress(%v) = %v, want %v", tt.elapsed, got, tt.once)
		}
		if got := loop.Progress(tt.elapsed); got != tt.loop {
			t.Errorf("loop.Progress(%v) = %v, want %v", tt.elapsed, got, tt.loop)
		}
	}
}

func TestAnimateSlerpsRotation(t *testing.T) {
	cfg := parse(t, `
[[node]]
name = "spinner"
[node.animation]
target_rotation = [0.0, 0.0, 90.0]
duration = 2.0
`)
	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	spinner, _ := s.Node("spinner")

	s.Animate(1)
	want := math.NewQuatFromAxisAngle(math.NewVec3(0, 0, 1), math.DegToRad(45))
	if got := spinner.Transform.Rotation; !got.Compare(want, 1e-4) {
		t.Fatalf("rotation at half time = %v, want %v", got, want)
	}

	s.Animate(10)
	want = math.NewQuatFromAxisAngle(math.NewVec3(0, 0, 1), math.DegToRad(90))
	if got := spinner.Transform.Rotation; !got.Compare(want, 1e-4) {
		t.Fatalf("rotation at end = %v, want %v", got, want)
	}
}

func TestRenderPacket(t *testing.T) {
	s, err := FromConfig(parse(t, hierarchy))
	if err != nil {
		t.Fatal(err)
	}
	packet := s.RenderPacket(0.5)

	if packet.DeltaTime != 0.5 || len(packet.Geometries) != 2 {
		t.Fatalf("packet = %+v", packet)
	}
	if !packet.Projection.Equal(math.NewMat4Ortho(-1280.0/720.0, 1280.0/720.0, -1, 1, -1, 1)) {
		t.Fatalf("projection = %v", packet.Projection)
	}
	if !packet.View.Equal(math.NewMat4Identity()) {
		t.Fatalf("view = %v", packet.View)
	}
	child, _ := s.Node("child")
	if packet.Geometries[0].Name != "child" || !packet.Geometries[0].Model.Equal(child.World()) {
		t.Fatalf("first geometry = %+v", packet.Geometries[0])
	}

	sink := renderer.NewRecordingSink()
	if err := renderer.New(sink).DrawFrame(packet); err != nil {
		t.Fatal(err)
	}
	if got := len(sink.Uploads()); got != 6 {
		t.Fatalf("uploads = %d", got)
	}
}

func TestRenderPacketWithoutCamera(t *testing.T) {
	packet := New(nil).RenderPacket(0)
	if !packet.Projection.Equal(math.NewMat4Identity()) || len(packet.Geometries) != 0 {
		t.Fatalf("packet = %+v", packet)
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Position = [3]float32{0, 0, 10}
	cfg.Camera.Rotation = [3]float32{0, 90, 0}

	camera := NewCamera(cfg.Viewport, cfg.Camera)
	if camera.Projection.Type != components.ProjectionPerspective {
		t.Fatalf("projection type = %v", camera.Projection.Type)
	}
	if camera.Projection.FOV != math.DegToRad(45) || camera.Projection.Width != 1280 {
		t.Fatalf("projection = %+v", camera.Projection)
	}
	if !camera.GetEulerRotation().Compare(math.NewVec3(0, math.K_HALF_PI, 0), tolerance) {
		t.Fatalf("rotation = %v", camera.GetEulerRotation())
	}
	if !camera.GetPosition().Equal(math.NewVec3(0, 0, 10)) {
		t.Fatalf("position = %v", camera.GetPosition())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(hierarchy), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Nodes) != 2 {
		t.Fatalf("nodes = %d", len(s.Nodes))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
