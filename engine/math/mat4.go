package math

import (
	"fmt"
	"strings"
)

/**
 * @brief Creates a matrix from 16 values given in storage order, that is
 * column by column: m00..m03 is the first column.
 */
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32) Mat4 {
	return Mat4{Data: [16]float32{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33}}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Translate(position)
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Scale(scale)
	return out_matrix
}

func (mt Mat4) Add(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out_matrix
}

/**
 * @brief Returns the product mt * other. Both operands and the result are
 * column-major, so (mt * other) * v == mt * (other * v).
 *
 * @param mt The left-hand matrix.
 * @param other The right-hand matrix.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			out_matrix.Data[col*4+row] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Multiplies the column vector v by mt.
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := &mt.Data
	return Vec4{
		d[0]*v.X + d[4]*v.Y + d[8]*v.Z + d[12]*v.W,
		d[1]*v.X + d[5]*v.Y + d[9]*v.Z + d[13]*v.W,
		d[2]*v.X + d[6]*v.Y + d[10]*v.Z + d[14]*v.W,
		d[3]*v.X + d[7]*v.Y + d[11]*v.Z + d[15]*v.W}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @return A transposed copy of of the provided matrix.
 */
func (mt Mat4) Transpose() Mat4 {
	d := &mt.Data
	return NewMat4(
		d[0], d[4], d[8], d[12],
		d[1], d[5], d[9], d[13],
		d[2], d[6], d[10], d[14],
		d[3], d[7], d[11], d[15])
}

/**
 * @brief Returns the determinant, expanded by minors along the first
 * storage group (Data[0..3]).
 */
func (mt Mat4) Determinant() float32 {
	d := &mt.Data
	det := float32(0)

	det += d[0] * (d[5]*(d[10]*d[15]-d[11]*d[14]) - d[6]*(d[9]*d[15]-d[11]*d[13]) + d[7]*(d[9]*d[14]-d[10]*d[13]))
	det -= d[1] * (d[4]*(d[10]*d[15]-d[11]*d[14]) - d[6]*(d[8]*d[15]-d[11]*d[12]) + d[7]*(d[8]*d[14]-d[10]*d[12]))
	det += d[2] * (d[4]*(d[9]*d[15]-d[11]*d[13]) - d[5]*(d[8]*d[15]-d[11]*d[12]) + d[7]*(d[8]*d[13]-d[9]*d[12]))
	det -= d[3] * (d[4]*(d[9]*d[14]-d[10]*d[13]) - d[5]*(d[8]*d[14]-d[10]*d[12]) + d[6]*(d[8]*d[13]-d[9]*d[12]))

	return det
}

/**
 * @brief Returns the matrix of signed 3x3 minors. Element n is the
 * cofactor of element n.
 */
func (mt Mat4) Cofactor() Mat4 {
	d := &mt.Data
	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = d[5]*(d[10]*d[15]-d[11]*d[14]) - d[6]*(d[9]*d[15]-d[11]*d[13]) + d[7]*(d[9]*d[14]-d[10]*d[13])
	o[1] = -(d[4]*(d[10]*d[15]-d[11]*d[14]) - d[6]*(d[8]*d[15]-d[11]*d[12]) + d[7]*(d[8]*d[14]-d[10]*d[12]))
	o[2] = d[4]*(d[9]*d[15]-d[11]*d[13]) - d[5]*(d[8]*d[15]-d[11]*d[12]) + d[7]*(d[8]*d[13]-d[9]*d[12])
	o[3] = -(d[4]*(d[9]*d[14]-d[10]*d[13]) - d[5]*(d[8]*d[14]-d[10]*d[12]) + d[6]*(d[8]*d[13]-d[9]*d[12]))

	o[4] = -(d[1]*(d[10]*d[15]-d[11]*d[14]) - d[2]*(d[9]*d[15]-d[11]*d[13]) + d[3]*(d[9]*d[14]-d[10]*d[13]))
	o[5] = d[0]*(d[10]*d[15]-d[11]*d[14]) - d[2]*(d[8]*d[15]-d[11]*d[12]) + d[3]*(d[8]*d[14]-d[10]*d[12])
	o[6] = -(d[0]*(d[9]*d[15]-d[11]*d[13]) - d[1]*(d[8]*d[15]-d[11]*d[12]) + d[3]*(d[8]*d[13]-d[9]*d[12]))
	o[7] = d[0]*(d[9]*d[14]-d[10]*d[13]) - d[1]*(d[8]*d[14]-d[10]*d[12]) + d[2]*(d[8]*d[13]-d[9]*d[12])

	o[8] = d[1]*(d[6]*d[15]-d[7]*d[14]) - d[2]*(d[5]*d[15]-d[7]*d[13]) + d[3]*(d[5]*d[14]-d[6]*d[13])
	o[9] = -(d[0]*(d[6]*d[15]-d[7]*d[14]) - d[2]*(d[4]*d[15]-d[7]*d[12]) + d[3]*(d[4]*d[14]-d[6]*d[12]))
	o[10] = d[0]*(d[5]*d[15]-d[7]*d[13]) - d[1]*(d[4]*d[15]-d[7]*d[12]) + d[3]*(d[4]*d[13]-d[5]*d[12])
	o[11] = -(d[0]*(d[5]*d[14]-d[6]*d[13]) - d[1]*(d[4]*d[14]-d[6]*d[12]) + d[2]*(d[4]*d[13]-d[5]*d[12]))

	o[12] = -(d[1]*(d[6]*d[11]-d[7]*d[10]) - d[2]*(d[5]*d[11]-d[7]*d[9]) + d[3]*(d[5]*d[10]-d[6]*d[9]))
	o[13] = d[0]*(d[6]*d[11]-d[7]*d[10]) - d[2]*(d[4]*d[11]-d[7]*d[8]) + d[3]*(d[4]*d[10]-d[6]*d[8])
	o[14] = -(d[0]*(d[5]*d[11]-d[7]*d[9]) - d[1]*(d[4]*d[11]-d[7]*d[8]) + d[3]*(d[4]*d[9]-d[5]*d[8]))
	o[15] = d[0]*(d[5]*d[10]-d[6]*d[9]) - d[1]*(d[4]*d[10]-d[6]*d[8]) + d[2]*(d[4]*d[9]-d[5]*d[8])

	return out_matrix
}

/**
 * @brief Returns transpose(cofactor) / determinant.
 * If the determinant is exactly zero an unmodified copy of the matrix is
 * returned together with a DegenerateError.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() (Mat4, error) {
	det := mt.Determinant()
	if det == 0.0 {
		return mt, degenerate("Mat4.Inverse", "determinant is zero")
	}

	adjugate := mt.Cofactor().Transpose()
	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = adjugate.Data[i] / det
	}
	return out_matrix, nil
}

/** @brief Adds translation into the translation column (Data[12..14]). */
func (mt *Mat4) Translate(translation Vec3) {
	mt.Data[12] += translation.X
	mt.Data[13] += translation.Y
	mt.Data[14] += translation.Z
}

/** @brief Multiplies the diagonal scale entries (Data[0], Data[5], Data[10]). */
func (mt *Mat4) Scale(scale Vec3) {
	mt.Data[0] *= scale.X
	mt.Data[5] *= scale.Y
	mt.Data[10] *= scale.Z
}

/** @brief Pre-multiplies by the rotation: mt = rotation.ToMat4() * mt. */
func (mt *Mat4) Rotate(rotation Quat) {
	*mt = rotation.ToMat4().Mul(*mt)
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes. Maps z into [-1, 1].
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Ortho(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	out_matrix.Data[0] = 2.0 / (right - left)
	out_matrix.Data[5] = 2.0 / (top - bottom)
	out_matrix.Data[10] = -2.0 / (far_clip - near_clip)
	out_matrix.Data[12] = -(right + left) / (right - left)
	out_matrix.Data[13] = -(top + bottom) / (top - bottom)
	out_matrix.Data[14] = -(far_clip + near_clip) / (far_clip - near_clip)

	return out_matrix
}

/**
 * @brief Creates and returns a right-handed perspective matrix that maps the
 * view-space depth range [-near, -far] onto [0, 1] after the perspective divide.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	s := 1.0 / ktan(fov_radians/2.0)

	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = s / aspect_ratio
	out_matrix.Data[5] = s
	out_matrix.Data[10] = -far_clip / (far_clip - near_clip)
	out_matrix.Data[14] = -(far_clip * near_clip) / (far_clip - near_clip)

	out_matrix.Data[11] = -1.0
	out_matrix.Data[15] = 0.0

	return out_matrix
}

// Floats returns the column-major buffer expected by a set-mat4 uniform upload.
func (mt Mat4) Floats() [16]float32 {
	return mt.Data
}

func (mt Mat4) Equal(other Mat4) bool {
	return mt.Data == other.Data
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := 0; i < 16; i++ {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// String prints the matrix in rows, i.e. transposed from storage order.
func (mt Mat4) String() string {
	var sb strings.Builder
	sb.WriteString("Mat4(")
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%f, %f, %f, %f",
			mt.Data[row], mt.Data[4+row], mt.Data[8+row], mt.Data[12+row])
	}
	sb.WriteString(")")
	return sb.String()
}
