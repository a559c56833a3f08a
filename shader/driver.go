package shader

// Stage is a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// Driver is the subset of the GL API used to build programs. Implementations
// act on the graphics context current on the calling thread.
type Driver interface {
	CreateProgram() uint32
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
}
