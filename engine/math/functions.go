package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Below this |sin(half_theta)| slerp falls back to a plain average. */
	K_SLERP_SIN_THRESHOLD float32 = 0.001
)

func ksin(x float32) float32 {
	return math32.Sin(x)
}

func kcos(x float32) float32 {
	return math32.Cos(x)
}

func ktan(x float32) float32 {
	return math32.Tan(x)
}

func kacos(x float32) float32 {
	return math32.Acos(x)
}

func ksqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func kabs(x float32) float32 {
	return math32.Abs(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// Random draws values from an explicitly seeded source so that runs
// are reproducible. It is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Float32InRange returns a value in [min, max).
func (r *Random) Float32InRange(min, max float32) float32 {
	return min + r.rng.Float32()*(max-min)
}

func (r *Random) Vec3InRange(min, max float32) Vec3 {
	return Vec3{
		r.Float32InRange(min, max),
		r.Float32InRange(min, max),
		r.Float32InRange(min, max)}
}

func (r *Random) Vec4InRange(min, max float32) Vec4 {
	return Vec4{
		r.Float32InRange(min, max),
		r.Float32InRange(min, max),
		r.Float32InRange(min, max),
		r.Float32InRange(min, max)}
}

// UnitQuat returns a normalized rotation about a random axis.
func (r *Random) UnitQuat() Quat {
	axis := r.Vec3InRange(-1, 1)
	for axis.LengthSquared() < 1e-4 {
		axis = r.Vec3InRange(-1, 1)
	}
	return NewQuatFromAxisAngle(axis.Normalize(), r.Float32InRange(-K_PI, K_PI))
}

// Mat4 returns an affine transform built from a random scale, rotation and translation.
func (r *Random) Mat4() Mat4 {
	m := NewMat4Scale(r.Vec3InRange(0.5, 2))
	m.Rotate(r.UnitQuat())
	m.Translate(r.Vec3InRange(-10, 10))
	return m
}
