//go:build !nogl
// +build !nogl

package opengl

import (
	"fmt"
	"strings"

	"github.com/birromer/essaim"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.1/glfw"
)

// Run runs an interactive simulation in an OpenGL window.
// It must be called from the main thread.
func Run(s *essaim.Simulation, conf *Config) error {
	// init GLFW and OpenGL
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	// create OpenGL window
	const (
		title  = "Essaim"
		width  = 800
		height = 800
	)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return err
	}

	// set background color and enable alpha blending
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	w.SwapBuffers()

	// initialize OpenGL objects
	d, err := newDisplay()
	if err != nil {
		return err
	}
	defer d.delete()

	// handle scrolling zoom
	home := newViewport(conf.Bounds)
	vp := home
	w.SetScrollCallback(func(w *glfw.Window, xo, yo float64) {
		xc, yc := w.GetCursorPos()
		xs, ys := w.GetSize()
		x, y := float32(xc)/float32(xs), (float32(ys)-float32(yc))/float32(ys)
		dx, dy := vp[1].X-vp[0].X, vp[1].Y-vp[0].Y
		z := 0.05 * float32(yo)
		vp[0].X += z * -(x * dx)
		vp[0].Y += z * -(y * dy)
		vp[1].X += z * (1 - x) * dx
		vp[1].Y += z * (1 - y) * dy
	})

	var quit, step bool
	pause := conf.ForcePause
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mod glfw.ModifierKey) {
		if action != glfw.Press && !(key == glfw.KeyRight && action == glfw.Repeat) {
			return
		}
		switch key {
		case glfw.KeyEscape:
			quit = true
		case glfw.KeySpace:
			if !conf.ForcePause {
				pause = !pause
			}
		case glfw.KeyRight:
			if pause {
				pause = false
				step = true
			}
		case glfw.KeyR:
			vp = home
		case glfw.KeyN:
			if conf.Reset != nil {
				conf.Reset()
			}
		}
	})

	for !(quit || w.ShouldClose()) {
		d.pixel = float64(vp[1].X-vp[0].X) / width
		d.frame(s, func() {
			d.draw(vp)
			w.SwapBuffers()
			glfw.PollEvents()
		}, func() bool {
			if step {
				pause = true
				step = false
				return true
			}
			return !pause
		}, conf.Step)
		d.Pause(conf.Pause)
	}
	return nil
}

// display contains all the OpenGL objects required to display the simulation.
type display struct {
	batch

	vao  uint32 // vertex array object
	vbo  uint32 // vertex buffer of the current batch
	prog uint32
	uni  struct {
		vp int32 // viewport
	}
}

// attribute locations, see vertexShader
const (
	attrPos   = 0
	attrColor = 1
)

const vertexShader = `
#version 330 core

uniform vec2 vp[2];

layout(location = 0) in vec2 pos;
layout(location = 1) in vec4 color;

out vec4 fcolor;

void main() {
	gl_Position = vec4(2.0 * (pos - vp[0]) / (vp[1] - vp[0]) - 1.0, 0.0, 1.0);
	fcolor = color;
}
`

const fragmentShader = `
#version 330 core

in vec4 fcolor;
out vec4 outColor;

void main() {
	outColor = fcolor;
}
`

// newDisplay compiles shaders and initializes a display.
func newDisplay() (*display, error) {
	d := new(display)

	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", vertexShader, gl.CreateShader(gl.VERTEX_SHADER)},
		{"Fragment", fragmentShader, gl.CreateShader(gl.FRAGMENT_SHADER)},
	})
	if err != nil {
		return nil, err
	}
	d.uni.vp = gl.GetUniformLocation(d.prog, gl.Str("vp\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	const stride = vertexSize * 4
	gl.EnableVertexAttribArray(attrPos)
	gl.VertexAttribPointer(attrPos, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attrColor)
	gl.VertexAttribPointer(attrColor, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

// draw sends the current batch to OpenGL and draws it.
func (d *display) draw(vp viewport) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if d.count() == 0 {
		return
	}

	gl.UseProgram(d.prog)
	gl.Uniform2fv(d.uni.vp, 2, &vp[0].X)

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.vertices)*4, gl.Ptr(d.vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(d.count()))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// delete releases the OpenGL objects of the display.
func (d *display) delete() {
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.prog)
}

// A shader wraps an OpenGL shader.
type shader struct {
	name   string
	src    string
	shader uint32
}

// makeProg builds OpenGL programs.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	for _, s := range shaders {
		str, free := gl.Strs(s.src + "\x00")
		gl.ShaderSource(s.shader, 1, str, nil)
		free()
		gl.CompileShader(s.shader)
		var status int32
		gl.GetShaderiv(s.shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			fmt.Printf("### %s shader compilation error ###\n\n%s\n\n", s.name, infoLog(s.shader, gl.GetShaderiv, gl.GetShaderInfoLog))
			fail = true
			gl.DeleteShader(s.shader)
		}
	}
	if fail {
		return 0, fmt.Errorf("essaim: GLSL errors")
	}
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s.shader)
	}
	gl.LinkProgram(prog)
	for _, s := range shaders {
		gl.DeleteShader(s.shader)
	}

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		log := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("essaim: GLSL link error: %s", log)
	}

	return prog, nil
}

// infoLog returns the info log of a shader or a program.
func infoLog(id uint32, iv func(uint32, uint32, *int32), get func(uint32, int32, *int32, *uint8)) string {
	var n int32
	iv(id, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	get(id, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
