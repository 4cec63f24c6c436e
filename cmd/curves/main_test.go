package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocurves/pkg/config"
	"github.com/philipparndt/gocurves/pkg/curves"
)

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var reset func(*cobra.Command)
	reset = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
	runConfigPath = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--count", "10", "--seed", "3")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "All curves\nCircle "), out)
	assert.Contains(t, out, "\nEllipse ")
	assert.Contains(t, out, "\nHelix ")
	assert.Contains(t, out, "Sorted circles\n")
	assert.Contains(t, out, "Circles radius_sum: ")

	// 10 curves + at least 1 circle.
	assert.GreaterOrEqual(t, strings.Count(out, " point = "), 11)
}

func TestRunCommandDeterministicWithSeed(t *testing.T) {
	a, err := execute(t, "run", "--seed", "8")
	require.NoError(t, err)
	b, err := execute(t, "run", "--seed", "8", "--parallel", "--threshold", "2")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunCommandTooFewCurves(t *testing.T) {
	_, err := execute(t, "run", "--count", "2")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 4\nseed: 5\nformat: table\n"), 0o644))

	out, err := execute(t, "run", "--config", path, "--format", "plain")
	require.NoError(t, err)

	all := strings.SplitN(out, "Sorted circles", 2)[0]
	assert.Equal(t, 4, strings.Count(all, " point = "), out)
}

func TestRunPipelineParallelMatchesSequential(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Count = 1000

	var seq, par bytes.Buffer
	require.NoError(t, runPipeline(&seq, cfg))
	cfg.Parallel = true
	cfg.Threshold = 4
	require.NoError(t, runPipeline(&par, cfg))

	seqSum := seq.String()[strings.LastIndex(seq.String(), "Circles radius_sum"):]
	parSum := par.String()[strings.LastIndex(par.String(), "Circles radius_sum"):]
	assert.Equal(t, seqSum, parSum)
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", "circle", "2", "--t", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Circle         point = (2.000000, 0.000000, 0.000000); derivative = (0.000000, 2.000000, 0.000000)")
}

func TestEvalCommandRejectsInvalidRadius(t *testing.T) {
	_, err := execute(t, "eval", "circle", "0")
	require.ErrorIs(t, err, curves.ErrInvalidParameter)
}

func TestParseCurve(t *testing.T) {
	c, err := parseCurve("Helix", []string{"1", "0.5"})
	require.NoError(t, err)
	assert.Equal(t, "Helix", c.Name())

	_, err = parseCurve("ellipse", []string{"1"})
	require.Error(t, err)

	_, err = parseCurve("spiral", []string{"1"})
	require.Error(t, err)

	_, err = parseCurve("circle", []string{"one"})
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestSerialRunnerKeepsReportsWhole(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 21
	cfg.Count = 50

	var single bytes.Buffer
	require.NoError(t, runPipeline(&single, cfg))

	var out bytes.Buffer
	runner := &serialRunner{
		out:     &out,
		resolve: func() (config.Config, error) { return cfg, nil },
	}

	const header = "--- curves.yaml changed ---\n\n"
	const runs = 8
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, runner.run(header))
		}()
	}
	wg.Wait()

	assert.Equal(t, strings.Repeat(header+single.String(), runs), out.String())
}

func TestSerialRunnerReportsResolveError(t *testing.T) {
	var out bytes.Buffer
	runner := &serialRunner{
		out:     &out,
		resolve: func() (config.Config, error) { return config.Config{}, config.ErrInvalidConfig },
	}

	require.ErrorIs(t, runner.run(""), config.ErrInvalidConfig)
	assert.Empty(t, out.String())
}
