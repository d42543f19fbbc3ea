// Package mesh holds the demo's vertex data.
package mesh

import "github.com/Faultbox/stereotri/pkg/math"

// Vertex is a position with an RGB color.
type Vertex struct {
	Pos   math.Vec3
	Color math.Vec3
}

// FloatsPerVertex is the number of float32 values per interleaved vertex.
const FloatsPerVertex = 6

// Stride is the byte size of one interleaved vertex.
const Stride = FloatsPerVertex * 4

// ColorOffset is the byte offset of the color attribute within a vertex.
const ColorOffset = 3 * 4

// Triangle is the demo's only mesh.
var Triangle = [3]Vertex{
	{Pos: math.Vec3{X: 0.0, Y: 0.5, Z: 0.0}, Color: math.Vec3{X: 1.0, Y: 0.0, Z: 0.0}},
	{Pos: math.Vec3{X: -0.5, Y: -0.5, Z: 0.0}, Color: math.Vec3{X: 0.0, Y: 1.0, Z: 0.0}},
	{Pos: math.Vec3{X: 0.5, Y: -0.5, Z: 0.0}, Color: math.Vec3{X: 0.0, Y: 0.0, Z: 1.0}},
}

// DoubleSided returns vs followed by vs in reverse order. Drawn as a triangle
// list, the second half has the opposite winding, so the mesh shows from both
// sides whatever the cull mode.
func DoubleSided(vs []Vertex) []Vertex {
	out := make([]Vertex, 0, len(vs)*2)
	out = append(out, vs...)
	for i := len(vs) - 1; i >= 0; i-- {
		out = append(out, vs[i])
	}
	return out
}

// Interleave flattens vertices into x, y, z, r, g, b order for a VBO.
func Interleave(vs []Vertex) []float32 {
	data := make([]float32, 0, len(vs)*FloatsPerVertex)
	for _, v := range vs {
		data = append(data,
			v.Pos.X, v.Pos.Y, v.Pos.Z,
			v.Color.X, v.Color.Y, v.Color.Z,
		)
	}
	return data
}

// TriangleBuffer returns the interleaved, double-sided triangle and its
// vertex count.
func TriangleBuffer() ([]float32, int32) {
	vs := DoubleSided(Triangle[:])
	return Interleave(vs), int32(len(vs))
}
