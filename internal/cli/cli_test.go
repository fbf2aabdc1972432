package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/internal/config"
)

// execute runs the command tree with args and returns stdout and the log output.
func execute(ctx context.Context, args ...string) (string, string, error) {
	var out, logs bytes.Buffer
	cmd := NewRootCommand(&logs)
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestAlgorithmsCmd(t *testing.T) {
	out, _, err := execute(context.Background(), "algorithms")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(generate.Algorithms()))
	assert.Equal(t, "binary-tree", lines[0])
	assert.Contains(t, lines, "wilson")
}

func TestGenerateCmd_Text(t *testing.T) {
	out, logs, err := execute(context.Background(), "generate", "--rows", "3", "--cols", "4", "-a", "wilson", "-s", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2*3+1)
	assert.Equal(t, "+---+---+---+---+", lines[0])
	assert.Equal(t, lines[0], lines[len(lines)-1])
	assert.Contains(t, logs, "maze generated")
}

func TestGenerateCmd_Deterministic(t *testing.T) {
	args := []string{"generate", "--rows", "6", "--cols", "6", "-a", "kruskal", "-s", "11", "--distances"}
	first, _, err := execute(context.Background(), args...)
	require.NoError(t, err)
	second, _, err := execute(context.Background(), args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCmd_PathMarkers(t *testing.T) {
	out, _, err := execute(context.Background(), "generate", "--rows", "5", "--cols", "5", "--path")
	require.NoError(t, err)
	assert.Contains(t, out, " S ")
	assert.Contains(t, out, " E ")
	assert.Contains(t, out, " . ")
}

func TestGenerateCmd_StartEnd(t *testing.T) {
	out, _, err := execute(context.Background(), "generate", "--rows", "2", "--cols", "2", "--start", "0,0", "--end", "1,1")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[1], "| S "), "got %q", lines[1])
	assert.Contains(t, lines[3], " E ")

	_, _, err = execute(context.Background(), "generate", "--rows", "2", "--cols", "2", "--start", "5,5")
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestGenerateCmd_Summary(t *testing.T) {
	out, _, err := execute(context.Background(), "generate", "--rows", "3", "--cols", "4", "-f", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "topology:  rect")
	assert.Contains(t, out, "cells:     12")
	assert.Contains(t, out, "links:     11")
}

func TestGenerateCmd_PolarDefaultsToSummary(t *testing.T) {
	out, _, err := execute(context.Background(), "generate", "--rings", "4", "-a", "aldous-broder")
	require.NoError(t, err)
	assert.Contains(t, out, "topology:  polar")
	assert.NotContains(t, out, "+---")

	_, _, err = execute(context.Background(), "generate", "--rings", "4", "-f", "text")
	assert.Error(t, err)
}

func TestGenerateCmd_MaskFile(t *testing.T) {
	path := writeFile(t, "ring.txt", "....\n.XX.\n.XX.\n....\n")

	out, _, err := execute(context.Background(), "generate", "--rows", "4", "--cols", "4", "--mask", path, "-a", "prim")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "###"))

	_, _, err = execute(context.Background(), "generate", "--rows", "4", "--cols", "4", "--mask", path, "-a", "binary-tree")
	assert.ErrorIs(t, err, generate.ErrMaskUnsupported)
}

func TestGenerateCmd_SizeFromMask(t *testing.T) {
	path := writeFile(t, "notch.txt", "..X..\n.....\n.....\n")

	out, _, err := execute(context.Background(), "generate", "--mask", path, "-f", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "size:      3x5")
	assert.Contains(t, out, "cells:     14")

	// an explicit extent wins; rows beyond the mask are enabled
	out, _, err = execute(context.Background(), "generate", "--mask", path, "--rows", "4", "-f", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "size:      4x5")
	assert.Contains(t, out, "cells:     19")

	out, _, err = execute(context.Background(), "generate", "-f", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "size:      10x10")
}

func TestGenerateCmd_SizeFromImageMask(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 6, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	img.SetGray(5, 1, color.Gray{Y: 0})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := writeFile(t, "strip.png", buf.String())

	out, _, err := execute(context.Background(), "generate", "--mask", path, "-a", "wilson", "-f", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "size:      2x6")
	assert.Contains(t, out, "cells:     11")
}

func TestBenchCmd_SizeFromMask(t *testing.T) {
	path := writeFile(t, "notch.txt", "..X..\n.....\n.....\n")
	out, logs, err := execute(context.Background(), "bench", "-v", "--mask", path, "-n", "1", "-a", "prim")
	require.NoError(t, err)
	assert.Contains(t, out, "prim")
	assert.Contains(t, logs, "cells=14")
}

func TestGenerateCmd_ConfigFile(t *testing.T) {
	path := writeFile(t, "maze.toml", `
[maze]
rows = 2
cols = 2
algorithm = "hunt-and-kill"
`)
	out, _, err := execute(context.Background(), "-c", path, "generate", "-f", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "cells:     4")

	// flags win over the file
	out, _, err = execute(context.Background(), "-c", path, "generate", "-f", "summary", "--rows", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "cells:     6")

	bad := writeFile(t, "bad.toml", "[maze]\nrowz = 3\n")
	_, _, err = execute(context.Background(), "-c", bad, "generate")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestGenerateCmd_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"UnknownAlgorithm", []string{"generate", "-a", "nope"}, generate.ErrUnknownAlgorithm},
		{"BadSize", []string{"generate", "--rows=-1"}, config.ErrInvalid},
		{"StepLimit", []string{"generate", "--rows", "20", "--cols", "20", "-a", "wilson", "--step-limit", "5"}, generate.ErrGenerationLimitExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(context.Background(), tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGenerateCmd_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := execute(ctx, "generate", "--rows", "40", "--cols", "40", "-a", "aldous-broder", "--step-limit", "0")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateCmd_Verbose(t *testing.T) {
	_, logs, err := execute(context.Background(), "generate", "-v", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, "grid ready")
}

func TestBenchCmd(t *testing.T) {
	out, logs, err := execute(context.Background(), "bench", "--rows", "5", "--cols", "5", "-n", "3", "-w", "2", "-a", "wilson,prim")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ALGORITHM"))
	assert.True(t, strings.HasPrefix(lines[1], "wilson"))
	assert.True(t, strings.HasPrefix(lines[2], "prim"))
	assert.Contains(t, logs, "bench finished")
}

func TestBenchCmd_AllAlgorithms(t *testing.T) {
	out, _, err := execute(context.Background(), "bench", "--rows", "4", "--cols", "4", "-n", "1")
	require.NoError(t, err)
	for _, alg := range generate.Algorithms() {
		assert.Contains(t, out, alg.String())
	}
}

func TestBenchCmd_MaskedSkipsScanAlgorithms(t *testing.T) {
	path := writeFile(t, "ring.txt", "....\n.XX.\n.XX.\n....\n")
	out, _, err := execute(context.Background(), "bench", "--rows", "4", "--cols", "4", "-n", "1", "--mask", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "binary-tree")
	assert.NotContains(t, out, "sidewinder")
	assert.Contains(t, out, "recursive-backtracker")
}

func TestParseCell(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	c, err := parseCell(g, " 2, 1")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell(7), c)

	for _, bad := range []string{"", "2", "a,1", "1,b"} {
		_, err := parseCell(g, bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(context.Background(), "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lvmaze dev"), "got %q", out)
}
