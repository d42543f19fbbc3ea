// Package glsl provides embedded GLSL shader sources.
package glsl

import _ "embed"

// TriangleVertexShader transforms colored vertices by the projection uniform.
//
//go:embed triangle.vert
var TriangleVertexShader string

// TriangleFragmentShader outputs the interpolated vertex color.
//
//go:embed triangle.frag
var TriangleFragmentShader string

// BlitVertexShader draws a fullscreen triangle with texture coordinates.
//
//go:embed blit.vert
var BlitVertexShader string

// BlitFragmentShader copies a texture.
//
//go:embed blit.frag
var BlitFragmentShader string

// AnaglyphFragmentShader merges two eye textures into a red/cyan image.
//
//go:embed anaglyph.frag
var AnaglyphFragmentShader string
