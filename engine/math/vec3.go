package math

import "fmt"

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/** @brief Creates a 3-element vector with every component set to value. */
func NewVec3Scalar(value float32) Vec3 {
	return Vec3{value, value, value}
}

/** @brief Returns a new Vec3 containing the x, y and z components of the supplied Vec4, essentially dropping the w component. */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/** @brief Returns a new Vec4 using vector as the x, y and z components and w for w. */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/** @brief Creates and returns a 3-component vector with all components set to 0.0f. */
func NewVec3Zero() Vec3 {
	return Vec3{}
}

/** @brief Creates and returns a 3-component vector with all components set to 1.0f. */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/** @brief Creates and returns a 3-component vector pointing up (0, 1, 0). */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/** @brief Creates and returns a 3-component vector pointing down (0, -1, 0). */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/** @brief Creates and returns a 3-component vector pointing left (-1, 0, 0). */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/** @brief Creates and returns a 3-component vector pointing right (1, 0, 0). */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/** @brief Creates and returns a 3-component vector pointing forward (0, 0, -1). */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/** @brief Creates and returns a 3-component vector pointing backward (0, 0, 1). */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v *Vec3) AddAssign(other Vec3) Vec3 {
	*v = v.Add(other)
	return *v
}

func (v *Vec3) SubAssign(other Vec3) Vec3 {
	*v = v.Sub(other)
	return *v
}

func (v *Vec3) MulAssign(other Vec3) Vec3 {
	*v = v.Mul(other)
	return *v
}

func (v *Vec3) DivAssign(other Vec3) Vec3 {
	*v = v.Div(other)
	return *v
}

func (v *Vec3) AddScalarAssign(s float32) Vec3 {
	*v = v.AddScalar(s)
	return *v
}

func (v *Vec3) SubScalarAssign(s float32) Vec3 {
	*v = v.SubScalar(s)
	return *v
}

func (v *Vec3) MulScalarAssign(s float32) Vec3 {
	*v = v.MulScalar(s)
	return *v
}

func (v *Vec3) DivScalarAssign(s float32) Vec3 {
	*v = v.DivScalar(s)
	return *v
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @param vector The vector to retrieve the squared length of.
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.Dot(v))
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 * There is no zero-length guard: the zero vector yields NaN components.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector
 */
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Length())
}

// NormalizeChecked is Normalize with a DegenerateError for zero length.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return v.DivScalar(l), degenerate("Vec3.Normalize", "zero length")
	}
	return v.DivScalar(l), nil
}

/**
 * @brief Calculates the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// Equal compares components exactly.
func (v Vec3) Equal(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
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
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The distance between vector_0 and vector_1.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param v The vector to transform.
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return NewVec3FromVec4(m.MulVec4(v.ToVec4(1.0)))
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%f, %f, %f)", v.X, v.Y, v.Z)
}
