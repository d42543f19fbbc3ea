// Package renderer draws the triangle once per render target and composites
// the targets into the window.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stereotri/internal/engine/framebuffer"
	"github.com/Faultbox/stereotri/internal/engine/present"
	"github.com/Faultbox/stereotri/internal/engine/shader"
	"github.com/Faultbox/stereotri/internal/engine/shader/glsl"
	"github.com/Faultbox/stereotri/internal/layout"
	"github.com/Faultbox/stereotri/internal/logger"
	"github.com/Faultbox/stereotri/internal/mesh"
	"github.com/Faultbox/stereotri/pkg/math"
)

// Colors, 0xRRGGBBAA.
const (
	ClearColor      uint32 = 0x68B0D8FF // eye targets
	BackgroundColor uint32 = 0x1A1A26FF // window outside the panels
	ConsoleColor    uint32 = 0x000000FF // bottom panel without preview
)

// Config holds renderer configuration.
type Config struct {
	Scale         int  // target pixels per panel pixel
	BottomPreview bool // draw the mono view on the bottom panel
}

// Eye selects one of the stereo targets.
type Eye int

// Eyes.
const (
	LeftEye Eye = iota
	RightEye
)

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program    *shader.Program
	projection int32

	vao         uint32
	vbo         uint32
	vertexCount int32

	eyes       [2]*framebuffer.Framebuffer
	bottom     *framebuffer.Framebuffer
	compositor *present.Compositor
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if err := r.init(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init() error {
	var err error
	r.program, err = shader.NewProgram("triangle", glsl.TriangleVertexShader, glsl.TriangleFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	if r.projection, err = r.program.Uniform("projection"); err != nil {
		return err
	}

	r.createVertexBuffer()

	s := int32(r.config.Scale)
	for i, name := range []string{"left eye", "right eye"} {
		if r.eyes[i], err = framebuffer.New(name, layout.EyeWidth*s, layout.EyeHeight*s); err != nil {
			return err
		}
	}
	if r.bottom, err = framebuffer.New("bottom", layout.BottomWidth*s, layout.BottomHeight*s); err != nil {
		return err
	}
	for _, fb := range r.targets() {
		w, h := fb.Size()
		r.log.Debug("render target created",
			logger.Target(fb.Name()),
			zap.Int32("width", w),
			zap.Int32("height", h),
		)
	}

	if r.compositor, err = present.New(); err != nil {
		return fmt.Errorf("failed to create compositor: %w", err)
	}
	return nil
}

// createVertexBuffer uploads the double-sided triangle. Attribute 0 is the
// position, attribute 1 the color.
func (r *Renderer) createVertexBuffer() {
	vertices, count := mesh.TriangleBuffer()
	r.vertexCount = count

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, mesh.Stride, nil)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, mesh.Stride, mesh.ColorOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("vertex buffer created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Int32("vertices", count),
	)
}

// RenderFrame draws the triangle into both eye targets and, if enabled, the
// bottom panel.
func (r *Renderer) RenderFrame(left, right, center math.Mat4) {
	r.renderTo(r.eyes[LeftEye], left, ClearColor)
	r.renderTo(r.eyes[RightEye], right, ClearColor)

	if r.config.BottomPreview {
		r.renderTo(r.bottom, center, ClearColor)
	} else {
		r.bottom.Bind()
		r.bottom.Clear(ConsoleColor)
	}

	r.bottom.Unbind()
}

// renderTo clears a target, binds the projection and draws the buffer.
func (r *Renderer) renderTo(target *framebuffer.Framebuffer, projection math.Mat4, clear uint32) {
	target.Bind()
	target.Clear(clear)

	r.program.Use()
	shader.SetMat4(r.projection, projection)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// Present composites the targets into a drawable of the given pixel size.
func (r *Renderer) Present(l layout.Layout, width, height int32) {
	c := r.compositor
	c.Begin(width, height, BackgroundColor)

	left, right := r.eyes[LeftEye].ColorTexture(), r.eyes[RightEye].ColorTexture()
	if l.Mode == layout.Anaglyph {
		c.Anaglyph(left, right, l.Top)
	} else {
		c.Blit(left, l.Eyes[LeftEye])
		c.Blit(right, l.Eyes[RightEye])
	}
	c.Blit(r.bottom.ColorTexture(), l.Bottom)

	c.End()
}

// targets lists the eye targets followed by the bottom target.
func (r *Renderer) targets() []*framebuffer.Framebuffer {
	return []*framebuffer.Framebuffer{r.eyes[LeftEye], r.eyes[RightEye], r.bottom}
}

// Target returns an eye's render target.
func (r *Renderer) Target(eye Eye) *framebuffer.Framebuffer {
	return r.eyes[eye]
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.compositor != nil {
		r.compositor.Close()
	}
	for _, fb := range r.targets() {
		if fb != nil {
			fb.Destroy()
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
