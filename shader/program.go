// Package shader loads GLSL sources and links them into GL programs.
package shader

import (
	"log"
	"strings"
)

// BuildProgram compiles the vertex and fragment sources and links them into
// a program on the current context. The shader objects are released before
// returning; the caller owns the returned program.
//
// A stage that fails to compile yields a *CompileError and nothing is
// linked. A failed link yields a *LinkError. Either way no handle is
// returned and every object created by the call has been deleted.
func BuildProgram(gl Driver, vertexSource, fragmentSource string) (uint32, error) {
	program := gl.CreateProgram()
	vertex := gl.CreateShader(Vertex)
	fragment := gl.CreateShader(Fragment)

	discard := func() {
		gl.DeleteShader(vertex)
		gl.DeleteShader(fragment)
		gl.DeleteProgram(program)
	}

	if err := compileShader(gl, vertex, Vertex, vertexSource); err != nil {
		discard()
		return 0, err
	}
	if err := compileShader(gl, fragment, Fragment, fragmentSource); err != nil {
		discard()
		return 0, err
	}

	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	linkErr := checkProgramLinkErrors(gl, program)

	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)
	if linkErr != nil {
		discard()
		return 0, linkErr
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return program, nil
}

func compileShader(gl Driver, shader uint32, stage Stage, src string) error {
	gl.ShaderSource(shader, src)
	gl.CompileShader(shader)
	if gl.CompileStatus(shader) {
		return nil
	}

	logMsg := strings.TrimSpace(gl.ShaderInfoLog(shader))
	log.Printf("[%s SHADER COMPILE ERROR]:\n%s\n", strings.ToUpper(stage.String()), logMsg)
	return &CompileError{Stage: stage, Log: logMsg}
}

func checkProgramLinkErrors(gl Driver, program uint32) error {
	if gl.LinkStatus(program) {
		return nil
	}

	logMsg := strings.TrimSpace(gl.ProgramInfoLog(program))
	log.Printf("[PROGRAM LINK ERROR]:\n%s\n", logMsg)
	return &LinkError{Log: logMsg}
}
