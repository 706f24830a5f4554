package math

import "fmt"

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/** @brief Creates a 4-element vector with every component set to value. */
func NewVec4Scalar(value float32) Vec4 {
	return Vec4{value, value, value, value}
}

/** @brief Returns a new Vec3 containing the x, y and z components of the supplied Vec4, essentially dropping the w component. */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

/** @brief Returns a new Vec4 using vector as the x, y and z components and w for w. */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/** @brief Creates and returns a 4-component vector with all components set to 0.0f. */
func NewVec4Zero() Vec4 {
	return Vec4{}
}

/** @brief Creates and returns a 4-component vector with all components set to 1.0f. */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

func (v Vec4) SubScalar(s float32) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

func (v Vec4) MulScalar(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v *Vec4) AddAssign(other Vec4) Vec4 {
	*v = v.Add(other)
	return *v
}

func (v *Vec4) SubAssign(other Vec4) Vec4 {
	*v = v.Sub(other)
	return *v
}

func (v *Vec4) MulAssign(other Vec4) Vec4 {
	*v = v.Mul(other)
	return *v
}

func (v *Vec4) DivAssign(other Vec4) Vec4 {
	*v = v.Div(other)
	return *v
}

func (v *Vec4) AddScalarAssign(s float32) Vec4 {
	*v = v.AddScalar(s)
	return *v
}

func (v *Vec4) SubScalarAssign(s float32) Vec4 {
	*v = v.SubScalar(s)
	return *v
}

func (v *Vec4) MulScalarAssign(s float32) Vec4 {
	*v = v.MulScalar(s)
	return *v
}

func (v *Vec4) DivScalarAssign(s float32) Vec4 {
	*v = v.DivScalar(s)
	return *v
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @param vector The vector to retrieve the squared length of.
 * @return The squared length.
 */
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec4) Length() float32 {
	return ksqrt(v.Dot(v))
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 * A zero-length vector yields NaN components.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector.
 */
func (v Vec4) Normalize() Vec4 {
	return v.DivScalar(v.Length())
}

// NormalizeChecked is Normalize with a DegenerateError for zero length.
func (v Vec4) NormalizeChecked() (Vec4, error) {
	l := v.Length()
	if l == 0 {
		return v.DivScalar(l), degenerate("Vec4.Normalize", "zero length")
	}
	return v.DivScalar(l), nil
}

// Equal compares components exactly.
func (v Vec4) Equal(other Vec4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance &&
		kabs(v.W-other.W) <= tolerance
}

func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) String() string {
	return fmt.Sprintf("Vec4(%f, %f, %f, %f)", v.X, v.Y, v.Z, v.W)
}
