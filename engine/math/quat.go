package math

import (
	"fmt"
	m "math"
)

func NewQuat(i, j, k, r float32) Quat {
	return Quat{i, j, k, r}
}

// NewQuatScalar sets all four components to value.
func NewQuatScalar(value float32) Quat {
	return Quat{value, value, value, value}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quat {
	return Quat{0, 0, 0, 1.0}
}

/**
 * @brief Returns the normal of the provided quaternion.
 *
 * @param q The quaternion.
 * @return The normal of the provided quaternion.
 */
func (q Quat) Length() float32 {
	return ksqrt(q.I*q.I + q.J*q.J + q.K*q.K + q.R*q.R)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 *
 * @param q The quaternion to normalize.
 * @return A normalized copy of the provided quaternion.
 */
func (q Quat) Normalize() Quat {
	length := q.Length()
	return Quat{
		q.I / length,
		q.J / length,
		q.K / length,
		q.R / length}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The i, j and k elements are negated, but the r element is untouched.
 *
 * @param q The quaternion to obtain a conjugate of.
 * @return The conjugate quaternion.
 */
func (q Quat) Conjugate() Quat {
	return Quat{-q.I, -q.J, -q.K, q.R}
}

/**
 * @brief Returns the inverse of the provided quaternion: the conjugate
 * divided by the squared length. Correct for non-unit quaternions too.
 *
 * @param q The quaternion to invert.
 * @return An inverse copy of the provided quaternion.
 */
func (q Quat) Inverse() Quat {
	return q.Conjugate().DivScalar(q.Dot(q))
}

func (q Quat) Add(other Quat) Quat {
	return Quat{q.I + other.I, q.J + other.J, q.K + other.K, q.R + other.R}
}

func (q Quat) Sub(other Quat) Quat {
	return Quat{q.I - other.I, q.J - other.J, q.K - other.K, q.R - other.R}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product).
 * Rotating by q.Mul(other) rotates by other first, then by q.
 *
 * @param q The first quaternion.
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quat) Mul(other Quat) Quat {
	out_quaternion := Quat{}

	out_quaternion.I = q.I*other.R +
		q.J*other.K -
		q.K*other.J +
		q.R*other.I

	out_quaternion.J = -q.I*other.K +
		q.J*other.R +
		q.K*other.I +
		q.R*other.J

	out_quaternion.K = q.I*other.J -
		q.J*other.I +
		q.K*other.R +
		q.R*other.K

	out_quaternion.R = -q.I*other.I -
		q.J*other.J -
		q.K*other.K +
		q.R*other.R

	return out_quaternion
}

func (q Quat) MulScalar(s float32) Quat {
	return Quat{q.I * s, q.J * s, q.K * s, q.R * s}
}

func (q Quat) DivScalar(s float32) Quat {
	return Quat{q.I / s, q.J / s, q.K / s, q.R / s}
}

func (q *Quat) AddAssign(other Quat) Quat {
	*q = q.Add(other)
	return *q
}

func (q *Quat) SubAssign(other Quat) Quat {
	*q = q.Sub(other)
	return *q
}

func (q *Quat) MulAssign(other Quat) Quat {
	*q = q.Mul(other)
	return *q
}

func (q *Quat) MulScalarAssign(s float32) Quat {
	*q = q.MulScalar(s)
	return *q
}

func (q *Quat) DivScalarAssign(s float32) Quat {
	*q = q.DivScalar(s)
	return *q
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param q The first quaternion.
 * @param other The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quat) Dot(other Quat) float32 {
	return q.I*other.I +
		q.J*other.J +
		q.K*other.K +
		q.R*other.R
}

// Equal compares components exactly.
func (q Quat) Equal(other Quat) bool {
	return q.I == other.I && q.J == other.J && q.K == other.K && q.R == other.R
}

func (q Quat) Compare(other Quat, tolerance float32) bool {
	return kabs(q.I-other.I) <= tolerance &&
		kabs(q.J-other.J) <= tolerance &&
		kabs(q.K-other.K) <= tolerance &&
		kabs(q.R-other.R) <= tolerance
}

/**
 * @brief Rotates v by q using the sandwich product q * (v, 0) * conjugate(q).
 * The returned w component is always 1.
 */
func (q Quat) RotateVec4(v Vec4) Vec4 {
	p := Quat{v.X, v.Y, v.Z, 0.0}
	result := q.Mul(p.Mul(q.Conjugate()))
	return Vec4{result.I, result.J, result.K, 1.0}
}

/** @brief Rotates v by q. */
func (q Quat) RotateVec3(v Vec3) Vec3 {
	return q.RotateVec4(v.ToVec4(1.0)).ToVec3()
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The matrix is
 * column-major; q is expected to be normalized.
 *
 * @param q The quaternion to be used.
 * @return A rotation matrix.
 */
func (q Quat) ToMat4() Mat4 {
	i, j, k, r := q.I, q.J, q.K, q.R
	return NewMat4(
		1.0-2.0*j*j-2.0*k*k,
		2.0*i*j+2.0*k*r,
		2.0*i*k-2.0*j*r,
		0.0,

		2.0*i*j-2.0*k*r,
		1.0-2.0*i*i-2.0*k*k,
		2.0*j*k+2.0*i*r,
		0.0,

		2.0*i*k+2.0*j*r,
		2.0*j*k-2.0*i*r,
		1.0-2.0*i*i-2.0*j*j,
		0.0,

		0.0, 0.0, 0.0, 1.0)
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 * The axis is NOT normalized here; that is the caller's job.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half_angle := angle / 2.0
	s := ksin(half_angle)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, kcos(half_angle)}
}

/**
 * @brief Creates a quaternion from Euler angles in radians (x, y, z).
 * The result equals AxisAngle(X, x) * AxisAngle(Y, y) * AxisAngle(Z, z),
 * so z is applied first. Evaluated in double precision.
 */
func NewQuatFromEuler(euler Vec3) Quat {
	c1 := m.Cos(float64(euler.X) / 2.0)
	c2 := m.Cos(float64(euler.Y) / 2.0)
	c3 := m.Cos(float64(euler.Z) / 2.0)
	s1 := m.Sin(float64(euler.X) / 2.0)
	s2 := m.Sin(float64(euler.Y) / 2.0)
	s3 := m.Sin(float64(euler.Z) / 2.0)

	return Quat{
		float32(s1*c2*c3 + c1*s2*s3),
		float32(c1*s2*c3 - s1*c2*s3),
		float32(c1*c2*s3 + s1*s2*c3),
		float32(c1*c2*c3 - s1*s2*s3)}
}

func lookAtBasis(from, to, up Vec3) (right, newUp, forward Vec3) {
	forward = to.Sub(from).Normalize()
	right = forward.Cross(up).Normalize()
	newUp = right.Cross(forward).Normalize()
	return right, newUp, forward
}

/**
 * @brief Creates an orientation facing from `from` towards `to`, extracted
 * directly from the right/up/forward basis. When
 * 1 + right.x + up.y + forward.z < 0 the result is NaN; use
 * NewQuatLookAtChecked at boundaries where that can happen.
 */
func NewQuatLookAt(from, to, up Vec3) Quat {
	right, newUp, forward := lookAtBasis(from, to, up)
	return quatFromBasis(right, newUp, forward, 1.0+right.X+newUp.Y+forward.Z)
}

// NewQuatLookAtChecked reports a DegenerateError when the basis trace leaves
// no real square root or when the basis itself is undefined.
func NewQuatLookAtChecked(from, to, up Vec3) (Quat, error) {
	right, newUp, forward := lookAtBasis(from, to, up)
	trace := 1.0 + right.X + newUp.Y + forward.Z
	q := quatFromBasis(right, newUp, forward, trace)
	if trace != trace {
		return q, degenerate("Quat.LookAt", "from equals to or up is parallel to the view direction")
	}
	if trace <= 0 {
		return q, degenerate("Quat.LookAt", "basis trace is not positive")
	}
	return q, nil
}

func quatFromBasis(right, newUp, forward Vec3, trace float32) Quat {
	w := ksqrt(trace) / 2.0
	w4_recip := 1.0 / (4.0 * w)
	return Quat{
		(newUp.Z - forward.Y) * w4_recip,
		(forward.X - right.Z) * w4_recip,
		(right.Y - newUp.X) * w4_recip,
		w}
}

/**
 * @brief Linearly blends the components of a and b then normalizes.
 * A cheaper approximation of QuatSlerp.
 */
func QuatLerp(a, b Quat, t float32) Quat {
	return a.MulScalar(1.0 - t).Add(b.MulScalar(t)).Normalize()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two unit quaternions.
 *
 * If |dot(a, b)| >= 1 a is returned unchanged. If the two are so close that
 * |sin(half_theta)| < K_SLERP_SIN_THRESHOLD, the plain component average is
 * returned without renormalization.
 *
 * @param a The first quaternion.
 * @param b The second quaternion.
 * @param t The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func QuatSlerp(a, b Quat, t float32) Quat {
	cos_half_theta := a.Dot(b)

	if kabs(cos_half_theta) >= 1.0 {
		return a
	}

	half_theta := kacos(cos_half_theta)
	sin_half_theta := ksqrt(1.0 - cos_half_theta*cos_half_theta)

	if kabs(sin_half_theta) < K_SLERP_SIN_THRESHOLD {
		return Quat{
			a.I*0.5 + b.I*0.5,
			a.J*0.5 + b.J*0.5,
			a.K*0.5 + b.K*0.5,
			a.R*0.5 + b.R*0.5}
	}

	ratio_a := ksin((1.0-t)*half_theta) / sin_half_theta
	ratio_b := ksin(t*half_theta) / sin_half_theta

	return Quat{
		a.I*ratio_a + b.I*ratio_b,
		a.J*ratio_a + b.J*ratio_b,
		a.K*ratio_a + b.K*ratio_b,
		a.R*ratio_a + b.R*ratio_b}
}

// Angle is the rotation angle of a unit quaternion in radians, in [0, 2*pi].
func (q Quat) Angle() float32 {
	return 2.0 * kacos(Clamp(q.R, -1.0, 1.0))
}

func (q Quat) String() string {
	return fmt.Sprintf("Quat(%f, %f, %f, %f)", q.I, q.J, q.K, q.R)
}
