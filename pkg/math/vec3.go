// Package math provides the small vector and matrix set used by the renderer.
package math

// Vec3 is a 3D vector. Vertex positions and colors both use it.
type Vec3 struct {
	X, Y, Z float32
}
