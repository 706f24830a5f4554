package scene

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/clay/engine/math"
)

type Node struct {
	ID        uuid.UUID
	Name      string
	Transform *math.Transform
	Parent    *Node
	Children  []*Node
	// Vertices of a non-indexed triangle list, in local space.
	Vertices  []math.Vertex3D
	Animation *Animation
}

func NewNode(name string) *Node {
	return &Node{
		ID:        uuid.New(),
		Name:      name,
		Transform: math.NewTransform(),
	}
}

// World returns the node's world matrix, parent transforms included.
func (n *Node) World() math.Mat4 {
	return n.Transform.GetWorld()
}

// WorldVertices returns the vertex positions transformed by World().
func (n *Node) WorldVertices() []math.Vec4 {
	return math.GeometryTransform(n.Vertices, n.World())
}

func (n *Node) isAncestor(other *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == other {
			return true
		}
	}
	return false
}

func (n *Node) detach() {
	if n.Parent == nil {
		return
	}
	siblings := n.Parent.Children
	for i, c := range siblings {
		if c == n {
			n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.Parent = nil
	n.Transform.Parent = nil
}

/**
 * @brief A keyframe pair: the node rotation is slerped from From to To
 * over Duration seconds. Looping animations bounce back and forth.
 */
type Animation struct {
	From     math.Quat
	To       math.Quat
	Duration float64
	Loop     bool
}

// Progress maps elapsed seconds onto [0, 1].
func (a *Animation) Progress(elapsed float64) float32 {
	if a.Duration <= 0 || elapsed <= 0 {
		return 0
	}
	cycles := elapsed / a.Duration
	if !a.Loop {
		if cycles >= 1 {
			return 1
		}
		return float32(cycles)
	}
	whole := float64(int64(cycles))
	frac := cycles - whole
	if int64(whole)%2 == 1 {
		frac = 1 - frac
	}
	return float32(frac)
}

func (a *Animation) Rotation(elapsed float64) math.Quat {
	return math.QuatSlerp(a.From, a.To, a.Progress(elapsed))
}
