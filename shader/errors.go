package shader

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrMissingFile = errors.New("shader file not found")

	// ErrShaderBuild matches every compile and link failure returned by
	// BuildProgram.
	ErrShaderBuild = errors.New("shader build failed")
)

type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("could not open shader file: %s", e.Path)
}

func (e *MissingFileError) Unwrap() []error {
	return []error{ErrMissingFile, fs.ErrNotExist}
}

// CompileError carries the driver's info log for a shader stage that failed
// to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation error: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error {
	return ErrShaderBuild
}

// LinkError carries the driver's program info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link error: %s", e.Log)
}

func (e *LinkError) Unwrap() error {
	return ErrShaderBuild
}
