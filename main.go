package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"phong/internal/gldriver"
	"phong/internal/scene"
	"phong/mat4"
	"phong/shader"
)

var (
	//go:embed shaders/phong.vert
	phongVertexSource string

	//go:embed shaders/phong.frag
	phongFragmentSource string
)

// shaderSources returns the built-in Phong shaders unless flags name
// replacements. A replacement that cannot be read ends the process.
func shaderSources(f *flags) (string, string) {
	vertex, fragment := phongVertexSource, phongFragmentSource
	if f.Vert() != "" {
		vertex = shader.MustReadShaderSource(f.Vert())
	}
	if f.Frag() != "" {
		fragment = shader.MustReadShaderSource(f.Frag())
	}
	return vertex, fragment
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func setMat4(loc int32, m mat4.Mat4) {
	gl.UniformMatrix4fv(loc, 1, true, m.Ptr())
}

func setVec3(loc int32, v scene.Vec3) {
	gl.Uniform3f(loc, v.X, v.Y, v.Z)
}

func main() {
	flags, err := NewFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		return
	}

	vertexSource, fragmentSource := shaderSources(flags)

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	windowWidth := mode.Width
	windowHeight := mode.Height
	if flags.Windowed() {
		windowWidth = flags.Width()
		windowHeight = int(1. / flags.Ar() * float64(windowWidth))
		monitor = nil
	}
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Phong", monitor, nil)
	if err != nil {
		panic(err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := shader.BuildProgram(gldriver.Driver{}, vertexSource, fragmentSource)
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		return
	}
	defer gl.DeleteProgram(program)
	if n := gldriver.AttachedShaders(program); n != 0 {
		log.Printf("program %d still has %d shaders attached", program, n)
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.CubeVertices)*4, gl.Ptr(scene.CubeVertices), gl.STATIC_DRAW)
	stride := int32(scene.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteBuffers(1, &vbo)

	gl.Enable(gl.DEPTH_TEST)

	cubes := scene.Default()
	reveal := scene.NewReveal(cubes.BFSOrder(0), len(cubes.Cubes), flags.Step())

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			w.SetShouldClose(true)
		case glfw.KeyJ:
			if reveal.Start(time.Now()) {
				log.Printf("reveal started, one cube every %s", flags.Step())
			}
		}
	})

	modelLoc := uniformLocation(program, "model")
	viewLoc := uniformLocation(program, "view")
	projectionLoc := uniformLocation(program, "projection")
	objectColorLoc := uniformLocation(program, "objectColor")
	lightColorLoc := uniformLocation(program, "lightColor")
	lightPositionLoc := uniformLocation(program, "lightPosition")
	cameraPositionLoc := uniformLocation(program, "cameraPosition")

	model := mat4.RotateX(mat4.Radians(10)).Mul(mat4.RotateY(mat4.Radians(-30)))
	lightPosition := scene.Vec3{X: 1, Y: 3, Z: 2}
	up := scene.Vec3{X: 0, Y: 1, Z: 0}
	aspect := float32(flags.Ar())

	start := time.Now()
	for !window.ShouldClose() {
		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		if h > 0 {
			aspect = float32(w) / float32(h)
		}

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)
		gl.BindVertexArray(vao)

		angle := float32(flags.Orbit() * time.Since(start).Seconds())
		setMat4(modelLoc, model)
		setMat4(projectionLoc, mat4.Perspective(mat4.Radians(45), aspect, 0.1, 100))
		setVec3(lightColorLoc, scene.White)
		setVec3(lightPositionLoc, lightPosition.RotateAroundAxis(up, angle))
		setVec3(cameraPositionLoc, scene.Vec3{})

		colors := scene.Colors(reveal.Update(time.Now()))
		for i, position := range cubes.Cubes {
			setMat4(viewLoc, position.Translation())
			setVec3(objectColorLoc, colors[i])
			gl.DrawArrays(gl.TRIANGLES, 0, scene.CubeVertexCount)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
