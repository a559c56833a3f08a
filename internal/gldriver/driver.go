// Package gldriver implements shader.Driver on top of go-gl.
package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"phong/shader"
)

// Driver issues calls against the GL context current on the calling thread.
// gl.Init must have succeeded first.
type Driver struct{}

var _ shader.Driver = Driver{}

var glShaders = map[shader.Stage]uint32{
	shader.Vertex:   gl.VERTEX_SHADER,
	shader.Fragment: gl.FRAGMENT_SHADER,
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(glShaders[stage])
}

// ShaderSource sets the source of the shader, adding the NUL terminator
// gl.Strs needs when src lacks one.
func (Driver) ShaderSource(handle uint32, src string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
}

func (Driver) CompileShader(handle uint32) {
	gl.CompileShader(handle)
}

func (Driver) CompileStatus(handle uint32) bool {
	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	logMsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(logMsg))
	return strings.TrimRight(logMsg, "\x00")
}

func (Driver) AttachShader(program, handle uint32) {
	gl.AttachShader(program, handle)
}

func (Driver) DetachShader(program, handle uint32) {
	gl.DetachShader(program, handle)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	logMsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
	return strings.TrimRight(logMsg, "\x00")
}

func (Driver) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// AttachedShaders returns the number of shader objects attached to program.
func AttachedShaders(program uint32) int32 {
	var n int32
	gl.GetProgramiv(program, gl.ATTACHED_SHADERS, &n)
	return n
}
