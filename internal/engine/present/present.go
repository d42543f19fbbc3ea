// Package present composites offscreen eye images into the window.
package present

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stereotri/internal/engine/framebuffer"
	"github.com/Faultbox/stereotri/internal/engine/shader"
	"github.com/Faultbox/stereotri/internal/engine/shader/glsl"
	"github.com/Faultbox/stereotri/internal/layout"
)

// Compositor draws textures into rectangles of the default framebuffer.
type Compositor struct {
	blit     *shader.Program
	anaglyph *shader.Program

	blitImage     int32
	anaglyphLeft  int32
	anaglyphRight int32

	// Core profile refuses to draw without a bound VAO, even an empty one.
	vao uint32

	surfaceHeight int32
}

// New compiles the compositor programs.
func New() (*Compositor, error) {
	c := &Compositor{}

	var err error
	if c.blit, err = shader.NewProgram("blit", glsl.BlitVertexShader, glsl.BlitFragmentShader); err != nil {
		return nil, err
	}
	if c.anaglyph, err = shader.NewProgram("anaglyph", glsl.BlitVertexShader, glsl.AnaglyphFragmentShader); err != nil {
		c.Close()
		return nil, err
	}

	for _, u := range []struct {
		p   *shader.Program
		n   string
		dst *int32
	}{
		{c.blit, "image", &c.blitImage},
		{c.anaglyph, "leftEye", &c.anaglyphLeft},
		{c.anaglyph, "rightEye", &c.anaglyphRight},
	} {
		if *u.dst, err = u.p.Uniform(u.n); err != nil {
			c.Close()
			return nil, fmt.Errorf("compositor: %w", err)
		}
	}

	gl.GenVertexArrays(1, &c.vao)
	return c, nil
}

// Begin binds the window framebuffer and clears it.
func (c *Compositor) Begin(width, height int32, clearColor uint32) {
	c.surfaceHeight = height

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	gl.Disable(gl.DEPTH_TEST)

	r, g, b, a := framebuffer.RGBA(clearColor)
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindVertexArray(c.vao)
}

// Blit draws a texture stretched over dst (top-left origin window pixels).
func (c *Compositor) Blit(texture uint32, dst layout.Rect) {
	if dst.Empty() {
		return
	}
	c.viewport(dst)

	c.blit.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	shader.SetInt(c.blitImage, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// Anaglyph draws both eyes over dst as a red/cyan image.
func (c *Compositor) Anaglyph(left, right uint32, dst layout.Rect) {
	if dst.Empty() {
		return
	}
	c.viewport(dst)

	c.anaglyph.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, left)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, right)
	shader.SetInt(c.anaglyphLeft, 0)
	shader.SetInt(c.anaglyphRight, 1)

	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.ActiveTexture(gl.TEXTURE0)
}

// End restores state the eye passes depend on.
func (c *Compositor) End() {
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (c *Compositor) viewport(dst layout.Rect) {
	r := dst.FlipY(c.surfaceHeight)
	gl.Viewport(r.X, r.Y, r.W, r.H)
}

// Close releases GL resources.
func (c *Compositor) Close() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.blit != nil {
		c.blit.Delete()
	}
	if c.anaglyph != nil {
		c.anaglyph.Delete()
	}
}
