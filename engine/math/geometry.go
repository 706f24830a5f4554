package math

import "fmt"

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
}

/**
 * @brief Builds vertices from flat position (3 floats each) and texture
 * coordinate (2 floats each) buffers. uvs may be empty.
 */
func NewVertices(positions []float32, uvs []float32) ([]Vertex3D, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("position buffer length %d is not a multiple of 3", len(positions))
	}
	count := len(positions) / 3
	if len(uvs) != 0 && len(uvs) != count*2 {
		return nil, fmt.Errorf("texcoord buffer length %d does not match %d vertices", len(uvs), count)
	}
	vertices := make([]Vertex3D, count)
	for i := 0; i < count; i++ {
		vertices[i].Position = Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
		if len(uvs) != 0 {
			vertices[i].Texcoord = Vec2{uvs[i*2], uvs[i*2+1]}
		}
	}
	return vertices, nil
}

/**
 * @brief Assigns face normals to a non-indexed triangle list. A trailing
 * partial triangle is left untouched.
 */
func GeometryGenerateNormals(vertices []Vertex3D) {
	for i := 0; i+2 < len(vertices); i += 3 {
		edge1 := vertices[i+1].Position.Sub(vertices[i].Position)
		edge2 := vertices[i+2].Position.Sub(vertices[i].Position)

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := edge1.Cross(edge2).Normalize()
		vertices[i].Normal = normal
		vertices[i+1].Normal = normal
		vertices[i+2].Normal = normal
	}
}

// GeometryTransform returns the clip-space position of every vertex under m.
func GeometryTransform(vertices []Vertex3D, m Mat4) []Vec4 {
	out := make([]Vec4, len(vertices))
	for i, v := range vertices {
		out[i] = m.MulVec4(v.Position.ToVec4(1.0))
	}
	return out
}

// FlattenPositions packs positions as x,y,z triples for a vertex buffer.
func FlattenPositions(vertices []Vertex3D) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		p := v.Position.Array()
		out = append(out, p[:]...)
	}
	return out
}

// FlattenTexcoords packs texture coordinates as u,v pairs for a vertex buffer.
func FlattenTexcoords(vertices []Vertex3D) []float32 {
	out := make([]float32, 0, len(vertices)*2)
	for _, v := range vertices {
		uv := v.Texcoord.Array()
		out = append(out, uv[:]...)
	}
	return out
}
