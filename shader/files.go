package shader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadShaderSource returns the contents of the shader file at path. A path
// that does not name a regular file yields a *MissingFileError, which
// matches both ErrMissingFile and fs.ErrNotExist.
func ReadShaderSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", &MissingFileError{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file %s: %w", path, err)
	}
	return string(data), nil
}

// MustReadShaderSource is like ReadShaderSource but prints the failure to
// stdout and exits the process instead of returning it.
func MustReadShaderSource(path string) string {
	src, err := ReadShaderSource(path)
	if err != nil {
		var missing *MissingFileError
		if errors.As(err, &missing) {
			fmt.Println("Could not open shader file: " + path)
		} else {
			fmt.Println(err.Error())
		}
		os.Exit(1)
	}
	return src
}
