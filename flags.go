package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type flags struct {
	vert     string
	frag     string
	width    int
	ar       float64
	windowed bool
	step     time.Duration
	orbit    float64
}

func NewFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	vert := fs.String("vert", "", "Path to a vertex shader source file replacing the built-in Phong vertex shader")
	frag := fs.String("frag", "", "Path to a fragment shader source file replacing the built-in Phong fragment shader")
	width := fs.Int("width", 600, "Window width in pixels")
	ar := fs.String("ar", "1:1", "Window aspect ratio in width:height format")
	windowed := fs.Bool("windowed", true, "Display in a window; pass -windowed=false for fullscreen on the primary monitor")
	step := fs.Duration("step", 3*time.Second, "Time between two cubes of the reveal animation")
	orbit := fs.Float64("orbit", 0, "Angular speed of the light around the y axis, in radians per second")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := checkShaderPath(*vert, ".vert", "Vertex"); err != nil {
		return nil, err
	}
	if err := checkShaderPath(*frag, ".frag", "Fragment"); err != nil {
		return nil, err
	}

	if *width <= 0 {
		return nil, fmt.Errorf("error: Window width must be greater than 0")
	}

	if *step <= 0 {
		return nil, fmt.Errorf("error: Animation step must be greater than 0")
	}

	parsedAspectRatio, err := parseAspectRatio(*ar)
	if err != nil {
		return nil, fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%s", err.Error())
	}

	return &flags{
		vert:     *vert,
		frag:     *frag,
		width:    *width,
		ar:       parsedAspectRatio,
		windowed: *windowed,
		step:     *step,
		orbit:    *orbit,
	}, nil
}

// checkShaderPath only validates the extension; a missing file is reported
// when the source is read.
func checkShaderPath(path, ext, stage string) error {
	if path != "" && filepath.Ext(path) != ext {
		return fmt.Errorf("error: %s shader source file must have a %s extension", stage, ext)
	}
	return nil
}

func parseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.ParseFloat(operands[0], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid width value")
	}

	height, err := strconv.ParseFloat(operands[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid height value")
	}

	if height == 0 {
		return 0, fmt.Errorf("error: Height cannot be zero")
	}

	return width / height, nil
}

func (f flags) Vert() string {
	return f.vert
}

func (f flags) Frag() string {
	return f.frag
}

func (f flags) Width() int {
	return f.width
}

func (f flags) Ar() float64 {
	return f.ar
}

func (f flags) Windowed() bool {
	return f.windowed
}

func (f flags) Step() time.Duration {
	return f.step
}

func (f flags) Orbit() float64 {
	return f.orbit
}
