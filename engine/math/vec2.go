package math

import "fmt"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

/** @brief Creates a 2-element vector with both components set to value. */
func NewVec2Scalar(value float32) Vec2 {
	return Vec2{value, value}
}

/** @brief Creates and returns a 2-component vector with all components set to 0.0f. */
func NewVec2Zero() Vec2 {
	return Vec2{}
}

/** @brief Creates and returns a 2-component vector with all components set to 1.0f. */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

func (v Vec2) SubScalar(s float32) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v *Vec2) AddAssign(other Vec2) Vec2 {
	*v = v.Add(other)
	return *v
}

func (v *Vec2) SubAssign(other Vec2) Vec2 {
	*v = v.Sub(other)
	return *v
}

func (v *Vec2) MulAssign(other Vec2) Vec2 {
	*v = v.Mul(other)
	return *v
}

func (v *Vec2) DivAssign(other Vec2) Vec2 {
	*v = v.Div(other)
	return *v
}

func (v *Vec2) AddScalarAssign(s float32) Vec2 {
	*v = v.AddScalar(s)
	return *v
}

func (v *Vec2) SubScalarAssign(s float32) Vec2 {
	*v = v.SubScalar(s)
	return *v
}

func (v *Vec2) MulScalarAssign(s float32) Vec2 {
	*v = v.MulScalar(s)
	return *v
}

func (v *Vec2) DivScalarAssign(s float32) Vec2 {
	*v = v.DivScalar(s)
	return *v
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @param vector The vector to retrieve the squared length of.
 * @return The squared length.
 */
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return ksqrt(v.Dot(v))
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 * A zero-length vector yields NaN components.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector
 */
func (v Vec2) Normalize() Vec2 {
	return v.DivScalar(v.Length())
}

// NormalizeChecked is Normalize with a DegenerateError for zero length.
func (v Vec2) NormalizeChecked() (Vec2, error) {
	l := v.Length()
	if l == 0 {
		return v.DivScalar(l), degenerate("Vec2.Normalize", "zero length")
	}
	return v.DivScalar(l), nil
}

// Equal compares components exactly.
func (v Vec2) Equal(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
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
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance && kabs(v.Y-other.Y) <= tolerance
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The distance between vector_0 and vector_1.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%f, %f)", v.X, v.Y)
}
