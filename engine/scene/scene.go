package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/clay/engine/config"
	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/math"
	"github.com/spaghettifunk/clay/engine/renderer"
	"github.com/spaghettifunk/clay/engine/renderer/components"
)

var (
	ErrDuplicateNode = errors.New("duplicate node")
	ErrCycle         = errors.New("parent cycle")
)

type Scene struct {
	Camera *components.Camera
	// Nodes in insertion order, which is also the draw order.
	Nodes []*Node

	byName map[string]*Node
	byID   map[uuid.UUID]*Node
}

func New(camera *components.Camera) *Scene {
	return &Scene{
		Camera: camera,
		byName: make(map[string]*Node),
		byID:   make(map[uuid.UUID]*Node),
	}
}

func (s *Scene) AddNode(node *Node) error {
	if _, ok := s.byName[node.Name]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicateNode, node.Name)
	}
	if _, ok := s.byID[node.ID]; ok {
		return fmt.Errorf("%w: id %s", ErrDuplicateNode, node.ID)
	}
	s.Nodes = append(s.Nodes, node)
	s.byName[node.Name] = node
	s.byID[node.ID] = node
	return nil
}

func (s *Scene) Node(name string) (*Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

func (s *Scene) NodeByID(id uuid.UUID) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// SetParent attaches child under parent. An empty parent detaches the child.
func (s *Scene) SetParent(child, parent string) error {
	c, ok := s.byName[child]
	if !ok {
		return fmt.Errorf("%w: node %q", core.ErrNotFound, child)
	}
	if parent == "" {
		c.detach()
		return nil
	}
	p, ok := s.byName[parent]
	if !ok {
		return fmt.Errorf("%w: parent %q of node %q", core.ErrNotFound, parent, child)
	}
	if p.isAncestor(c) {
		return fmt.Errorf("%w: %q cannot be parented to %q", ErrCycle, child, parent)
	}
	c.detach()
	c.Parent = p
	c.Transform.Parent = p.Transform
	p.Children = append(p.Children, c)
	return nil
}

// Animate poses every animated node at elapsed seconds.
func (s *Scene) Animate(elapsed float64) {
	for _, n := range s.Nodes {
		if n.Animation != nil {
			n.Transform.SetRotation(n.Animation.Rotation(elapsed))
		}
	}
}

// RenderPacket collects the camera matrices and one model matrix per node.
func (s *Scene) RenderPacket(deltaTime float64) *renderer.RenderPacket {
	packet := &renderer.RenderPacket{
		DeltaTime:  deltaTime,
		Projection: math.NewMat4Identity(),
		View:       math.NewMat4Identity(),
		Geometries: make([]renderer.GeometryRenderData, 0, len(s.Nodes)),
	}
	if s.Camera != nil {
		packet.Projection = s.Camera.GetProjection()
		packet.View = s.Camera.GetView()
	}
	for _, n := range s.Nodes {
		packet.Geometries = append(packet.Geometries, renderer.GeometryRenderData{
			Name:  n.Name,
			Model: n.World(),
		})
	}
	return packet
}

func eulerDegrees(v [3]float32) math.Quat {
	return math.NewQuatFromEuler(math.NewVec3(
		math.DegToRad(v[0]),
		math.DegToRad(v[1]),
		math.DegToRad(v[2]),
	))
}

func NewCamera(viewport config.ViewportConfig, cfg config.CameraConfig) *components.Camera {
	projection := components.Projection{
		Type:   components.ProjectionPerspective,
		FOV:    math.DegToRad(cfg.FOV),
		Near:   cfg.Near,
		Far:    cfg.Far,
		Width:  viewport.Width,
		Height: viewport.Height,
	}
	if cfg.Projection == config.ProjectionOrthographic {
		projection.Type = components.ProjectionOrthographic
		projection.Left = cfg.Left
		projection.Right = cfg.Right
		projection.Bottom = cfg.Bottom
		projection.Top = cfg.Top
	}

	camera := components.NewCamera(projection)
	camera.SetPosition(math.NewVec3(cfg.Position[0], cfg.Position[1], cfg.Position[2]))
	camera.SetEulerRotation(math.NewVec3(
		math.DegToRad(cfg.Rotation[0]),
		math.DegToRad(cfg.Rotation[1]),
		math.DegToRad(cfg.Rotation[2]),
	))
	return camera
}

func newNode(cfg config.NodeConfig) (*Node, error) {
	node := NewNode(cfg.Name)
	if cfg.ID != "" {
		id, err := uuid.Parse(cfg.ID)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", cfg.Name, err)
		}
		node.ID = id
	}

	scale := math.NewVec3One()
	if cfg.Scale != nil {
		scale = math.NewVec3(cfg.Scale[0], cfg.Scale[1], cfg.Scale[2])
	}
	rotation := eulerDegrees(cfg.Rotation)
	node.Transform.SetPositionRotationScale(
		math.NewVec3(cfg.Position[0], cfg.Position[1], cfg.Position[2]),
		rotation,
		scale,
	)

	positions := make([]float32, 0, len(cfg.Vertices)*3)
	for _, v := range cfg.Vertices {
		positions = append(positions, v[0], v[1], v[2])
	}
	uvs := make([]float32, 0, len(cfg.UVs)*2)
	for _, uv := range cfg.UVs {
		uvs = append(uvs, uv[0], uv[1])
	}
	vertices, err := math.NewVertices(positions, uvs)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", cfg.Name, err)
	}
	math.GeometryGenerateNormals(vertices)
	node.Vertices = vertices

	if cfg.Animation != nil {
		node.Animation = &Animation{
			From:     rotation,
			To:       eulerDegrees(cfg.Animation.TargetRotation),
			Duration: cfg.Animation.Duration,
			Loop:     cfg.Animation.Loop,
		}
	}
	return node, nil
}

// FromConfig builds the camera and node hierarchy of a validated config.
func FromConfig(cfg *config.Config) (*Scene, error) {
	s := New(NewCamera(cfg.Viewport, cfg.Camera))

	for _, nc := range cfg.Nodes {
		node, err := newNode(nc)
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		if err := s.AddNode(node); err != nil {
			core.LogError(err.Error())
			return nil, err
		}
	}

	// parents may be declared after their children
	for _, nc := range cfg.Nodes {
		if nc.Parent == "" {
			continue
		}
		if err := s.SetParent(nc.Name, nc.Parent); err != nil {
			core.LogError(err.Error())
			return nil, err
		}
	}
	return s, nil
}

func Load(path string) (*Scene, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}
