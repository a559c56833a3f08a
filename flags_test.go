package main

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(args ...string) (*flags, error) {
	fs := flag.NewFlagSet("phong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return NewFlags(fs, args)
}

func TestFlagsDefaults(t *testing.T) {
	f, err := parse()
	require.NoError(t, err)

	assert.Empty(t, f.Vert())
	assert.Empty(t, f.Frag())
	assert.Equal(t, 600, f.Width())
	assert.Equal(t, 1.0, f.Ar())
	assert.True(t, f.Windowed())
	assert.Equal(t, 3*time.Second, f.Step())
	assert.Zero(t, f.Orbit())
}

func TestFlagsOverrides(t *testing.T) {
	f, err := parse(
		"-vert", "shaders/phong.vert",
		"-frag", "/tmp/does-not-need-to-exist.frag",
		"-width", "800",
		"-ar", "16:9",
		"-windowed=false",
		"-step", "500ms",
		"-orbit", "0.5",
	)
	require.NoError(t, err)

	assert.Equal(t, "shaders/phong.vert", f.Vert())
	assert.Equal(t, "/tmp/does-not-need-to-exist.frag", f.Frag())
	assert.Equal(t, 800, f.Width())
	assert.InDelta(t, 16.0/9.0, f.Ar(), 1e-12)
	assert.False(t, f.Windowed())
	assert.Equal(t, 500*time.Millisecond, f.Step())
	assert.Equal(t, 0.5, f.Orbit())
}

func TestFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"vertex extension", []string{"-vert", "a.frag"}, "must have a .vert extension"},
		{"fragment extension", []string{"-frag", "a.glsl"}, "must have a .frag extension"},
		{"width", []string{"-width", "0"}, "width must be greater than 0"},
		{"step", []string{"-step", "0s"}, "step must be greater than 0"},
		{"ratio format", []string{"-ar", "16x9"}, "Aspect Ratio could not be parsed"},
		{"zero height", []string{"-ar", "16:0"}, "Height cannot be zero"},
		{"unknown flag", []string{"-fullscreen"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parse(tt.args...)
			assert.Nil(t, f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseAspectRatio(t *testing.T) {
	ar, err := parseAspectRatio("4:3")
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, ar, 1e-12)

	for _, in := range []string{"", "4", "a:3", "4:b", "1:2:3"} {
		_, err := parseAspectRatio(in)
		assert.Error(t, err, in)
	}
}

func TestShaderSourcesDefaults(t *testing.T) {
	f, err := parse()
	require.NoError(t, err)

	vertex, fragment := shaderSources(f)
	assert.Contains(t, vertex, "uniform mat4 projection;")
	assert.Contains(t, fragment, "uniform vec3 objectColor;")
}

func TestShaderSourcesOverride(t *testing.T) {
	f, err := parse("-vert", "shaders/phong.vert")
	require.NoError(t, err)

	vertex, fragment := shaderSources(f)
	assert.Equal(t, phongVertexSource, vertex)
	assert.Equal(t, phongFragmentSource, fragment)
}
