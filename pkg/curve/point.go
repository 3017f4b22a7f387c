package curve

// Float is any floating point type a Point can be built of.
type Float interface {
	~float32 | ~float64
}

// Point is a 2D point. Its coordinates are usually normalized to [0, 1]
// but nothing enforces that.
type Point[T Float] struct {
	X, Y T
}

// Pt is a shorthand for Point[T]{x, y}.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{x, y}
}

// Add returns p + other.
func (p Point[T]) Add(other Point[T]) Point[T] {
	return Point[T]{p.X + other.X, p.Y + other.Y}
}

// Mul returns p scaled by scalar.
func (p Point[T]) Mul(scalar T) Point[T] {
	return Point[T]{p.X * scalar, p.Y * scalar}
}

// Redefine converts point between coordinate types.
func Redefine[T2, T1 Float](p Point[T1]) Point[T2] {
	return Point[T2]{T2(p.X), T2(p.Y)}
}
