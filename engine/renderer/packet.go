package renderer

import "github.com/spaghettifunk/clay/engine/math"

/** @brief The matrices of a single drawable for one frame. */
type GeometryRenderData struct {
	Name  string
	Model math.Mat4
}

/**
 * @brief A collection of data the renderer needs to draw one frame:
 * the camera matrices plus one model matrix per drawable.
 */
type RenderPacket struct {
	DeltaTime  float64
	Projection math.Mat4
	View       math.Mat4
	Geometries []GeometryRenderData
}
