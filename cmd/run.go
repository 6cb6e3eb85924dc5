package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"microkernel-go/engine"
	"microkernel-go/logging"
)

var runCmd = &cobra.Command{
	Use:   "run <manifest>",
	Short: "Boot a manifest and drive its scheduler until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

var runTickInterval time.Duration

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().DurationVar(&runTickInterval, "tick", 10*time.Millisecond, "simulated timer-interrupt interval")
}

func runRun(cmd *cobra.Command, args []string) error {
	e, err := engine.Boot(args[0])
	if err != nil {
		return fmt.Errorf("boot: %w", err)
	}

	ctx := GetContext()
	go e.Run(ctx)
	go e.RunClock(ctx, runTickInterval)
	defer e.Stop()

	previous := -1
	for {
		select {
		case <-ctx.Done():
			logging.Info("run: interrupted, shutting down")
			return nil
		default:
		}

		idx := e.Select(ctx)
		if idx != previous {
			logging.Info("scheduler selected task", "index", idx, "name", e.Tasks[idx].Name)
			previous = idx
		}

		select {
		case <-time.After(runTickInterval):
		case <-ctx.Done():
			logging.Info("run: interrupted, shutting down")
			return nil
		}
	}
}
