package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocurves/internal/logging"
	"github.com/philipparndt/gocurves/pkg/config"
	"github.com/philipparndt/gocurves/pkg/watcher"
)

var (
	watchConfigPath string
	watchDebounce   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the pipeline whenever the config file changes",
	Long: `Run the pipeline once, then again every time the config file is saved.
Flags given on the command line keep overriding the file. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchConfigPath, "config", "c", "", "YAML config file to watch")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Delay before re-running after a change")
	_ = watchCmd.MarkFlagRequired("config")
	addPipelineFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := logging.New("watch")
	resolve := func() (config.Config, error) {
		return resolveConfig(cmd, watchConfigPath)
	}
	runner := &serialRunner{out: cmd.OutOrStdout(), resolve: resolve}

	if err := runner.run(""); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch(watchConfigPath, func(path string) {
		logger.Info("config changed, re-running", "path", path)
		if err := runner.run(fmt.Sprintf("--- %s changed ---\n\n", path)); err != nil {
			// Keep watching; the next save may fix the file.
			logger.Error("run failed", "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching config", "path", watchConfigPath)
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// serialRunner runs the pipeline one report at a time; the debounce timer
// fires on its own goroutine.
type serialRunner struct {
	mu      sync.Mutex
	out     io.Writer
	resolve func() (config.Config, error)
}

// run writes header, then a full report, without interleaving with other runs.
func (r *serialRunner) run(header string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if header != "" {
		if _, err := io.WriteString(r.out, header); err != nil {
			return err
		}
	}
	cfg, err := r.resolve()
	if err != nil {
		return err
	}
	return runPipeline(r.out, cfg)
}
