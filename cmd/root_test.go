package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = filepath.Join("..", "pkg", "scaffold", "testdata", "scaffold-1.json")

// isolate keeps user config files and environment out of the run
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func execute(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	isolate(t)

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestEmptyPromptIsUsageError(t *testing.T) {
	code, stdout, stderr := execute(t, "\n")

	assert.Equal(t, exitUsage, code)
	assert.Equal(t, inputPrompt, stdout)
	assert.Contains(t, stderr, "ERROR: Input file is required.")
}

func TestPromptReadsPath(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.png")

	code, stdout, stderr := execute(t, "  "+sample+"  \n", "-o", output)

	require.Equal(t, exitOK, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, inputPrompt))
	assert.FileExists(t, output)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	code, _, stderr := execute(t, "", "--bogus")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "ERROR:")
}

func TestUnknownBackendIsUsageError(t *testing.T) {
	code, _, stderr := execute(t, "", "-f", sample, "--backend", "opengl")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown backend")
}

func TestMissingPartsFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[]}`), 0o644))

	code, _, stderr := execute(t, "", "-f", path, "-o", filepath.Join(t.TempDir(), "out.png"))

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "missing 'parts'")
}

func TestMissingFileFails(t *testing.T) {
	code, _, stderr := execute(t, "", "info", filepath.Join(t.TempDir(), "nope.json"))

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "failed to open file")
}

func TestRenderPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "scene.png")

	code, stdout, stderr := execute(t, "",
		"-f", sample, "-h1", "Leg", "-tx", "15.5", "-tz", "-1.2", "-rz", "90", "-vo", "-vz",
		"-o", output, "--width", "320", "--height", "240")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Wrote "+output)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestPositionalInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "scene.png")

	code, _, stderr := execute(t, "", sample, "--output", output)

	require.Equal(t, exitOK, code, stderr)
	assert.FileExists(t, output)
}

func TestTooManyFilesIsUsageError(t *testing.T) {
	code, _, _ := execute(t, "", "a.json", "b.json")
	assert.Equal(t, exitUsage, code)
}

func TestInfoCommand(t *testing.T) {
	code, stdout, stderr := execute(t, "", "info", sample, "-h1", "Leg")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "Parts: 4")
	assert.Contains(t, stdout, "Edges: 48")
	assert.Contains(t, stdout, "Highlighted parts: 2")
	assert.Contains(t, stdout, "Highlighted indices: [1 2]")
	assert.Contains(t, stdout, "perspective, elevation 30°, azimuth -60°")
}

func TestInfoHighlightIsCaseSensitive(t *testing.T) {
	code, stdout, stderr := execute(t, "", "info", sample, "-h1", "leg")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "Highlighted parts: 0")
	assert.Contains(t, stdout, "Highlighted indices: []")
}

func TestInfoAxisPrecedence(t *testing.T) {
	code, stdout, stderr := execute(t, "", "info", sample, "-vo", "-vz", "-vy")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "orthographic, elevation 0°, azimuth 90°")
	assert.Contains(t, stderr, "several axis views")
}

func TestEdgesCommand(t *testing.T) {
	code, stdout, stderr := execute(t, "", "edges", sample, "--part", "Deck", "-n", "3")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "showing 3 of 12")
	assert.Contains(t, stdout, "Deck")
	assert.NotContains(t, stdout, "Leg")
}

func TestEdgesLongest(t *testing.T) {
	code, stdout, stderr := execute(t, "", "edges", sample, "--longest", "-n", "1")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "Top 1 Longest Edges")
	assert.Contains(t, stdout, "2.500000")
}

func TestEdgesLengthFilter(t *testing.T) {
	code, stdout, stderr := execute(t, "", "edges", sample, "--part", "Deck", "--min", "0.5", "--max", "1")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "showing 4 of 4")
	assert.Contains(t, stdout, "0.700000")
	assert.NotContains(t, stdout, "2.500000 ")
}

func TestEdgesMinOnly(t *testing.T) {
	code, stdout, stderr := execute(t, "", "edges", sample, "--min", "2.4", "-n", "100")
	require.Equal(t, exitOK, code, stderr)

	// 4 long edges on the box, 4 on the deck
	assert.Contains(t, stdout, "showing 8 of 8")
}

func TestEdgesBadFlagCombinationsAreUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"longest and shortest", []string{"edges", sample, "--longest", "--shortest"}, "cannot be combined"},
		{"min above max", []string{"edges", sample, "--min", "3", "--max", "1"}, "greater than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, "", tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := execute(t, "", "version")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "scaffoldview dev")
}
