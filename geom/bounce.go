package geom

// Reflect mirrors motion about the surface with unit normal n:
// m - 2(m·n)n. The magnitude of motion is preserved.
func Reflect(motion, n Vec2) Vec2 {
	return motion.Sub(n.Scale(2 * motion.Dot(n)))
}
