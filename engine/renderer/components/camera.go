package components

import (
	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/math"
)

type ProjectionType uint8

const (
	ProjectionPerspective ProjectionType = iota
	ProjectionOrthographic
)

/**
 * @brief Projection settings of a camera. For orthographic cameras a
 * zero Left/Right/Bottom/Top box means "derive from the viewport aspect".
 */
type Projection struct {
	Type ProjectionType
	/** @brief Vertical field of view in radians (perspective only). */
	FOV    float32
	Near   float32
	Far    float32
	Width  uint32
	Height uint32
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
}

/**
 * @brief Represents a camera that produces the view and projection
 * matrices handed to the renderer once per frame.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/**
	 * @brief The rotation of this camera using Euler angles (pitch, yaw, roll).
	 * NOTE: Do not set this directly, use SetEulerRotation() instead
	 * so the view matrix is recalculated when needed.
	 */
	EulerRotation math.Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
	Projection Projection
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

// 89 degrees, to avoid gimbal lock.
const pitchLimit = float32(1.55334306)

func NewCamera(projection Projection) *Camera {
	camera := &Camera{Projection: projection}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3Zero()
	c.Position = math.NewVec3Zero()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

func (c *Camera) Orientation() math.Quat {
	return math.NewQuatFromEuler(c.EulerRotation)
}

// GetView returns inverse(T * R). If the camera matrix cannot be inverted
// the previous view is kept.
func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		world := math.NewMat4Identity()
		world.Rotate(c.Orientation())
		world.Translate(c.Position)

		view, err := world.Inverse()
		if err != nil {
			core.LogError("camera view not updated: %s", err)
		} else {
			c.ViewMatrix = view
		}
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Resize(width, height uint32) {
	c.Projection.Width = width
	c.Projection.Height = height
}

func (c *Camera) Aspect() float32 {
	if c.Projection.Height == 0 {
		return 1
	}
	return float32(c.Projection.Width) / float32(c.Projection.Height)
}

func (c *Camera) GetProjection() math.Mat4 {
	p := c.Projection
	switch p.Type {
	case ProjectionOrthographic:
		if p.Left == 0 && p.Right == 0 && p.Bottom == 0 && p.Top == 0 {
			aspect := c.Aspect()
			return math.NewMat4Ortho(-aspect, aspect, -1, 1, p.Near, p.Far)
		}
		return math.NewMat4Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	default:
		return math.NewMat4Perspective(p.FOV, c.Aspect(), p.Near, p.Far)
	}
}

// ViewProjection is projection * view, ready for upload.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.GetProjection().Mul(c.GetView())
}

func (c *Camera) Forward() math.Vec3 {
	return c.Orientation().RotateVec3(math.NewVec3Forward())
}

func (c *Camera) Backward() math.Vec3 {
	return c.Orientation().RotateVec3(math.NewVec3Back())
}

func (c *Camera) Left() math.Vec3 {
	return c.Orientation().RotateVec3(math.NewVec3Left())
}

func (c *Camera) Right() math.Vec3 {
	return c.Orientation().RotateVec3(math.NewVec3Right())
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X+amount, -pitchLimit, pitchLimit)
	c.IsDirty = true
}
