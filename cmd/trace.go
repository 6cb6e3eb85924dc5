package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"microkernel-go/abi"
	"microkernel-go/engine"
)

var traceCmd = &cobra.Command{
	Use:   "trace <manifest> <events.json>",
	Short: "Boot a manifest and replay a scripted sequence of kernel events",
	Long: `Boot a manifest and apply a JSON array of events to it in order,
printing the resulting scheduling hint after each one. Each event is one of:

  {"op": "dispatch", "task": 1}
  {"op": "irq", "task": 1, "mask": 4}
  {"op": "tick", "time": 500}
  {"op": "fault", "task": 1, "message": "manual fault"}
  {"op": "reinitialize", "task": 1}

This stands in for the external stimuli a running kernel instance would get
from hardware traps and an interrupt controller — there is no persistent
daemon to attach to between invocations, so a single process boots, plays
the trace, and exits.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

type traceEvent struct {
	Op      string `json:"op"`
	Task    int    `json:"task"`
	Mask    uint32 `json:"mask"`
	Time    uint64 `json:"time"`
	Message string `json:"message"`
}

func runTrace(cmd *cobra.Command, args []string) error {
	e, err := engine.Boot(args[0])
	if err != nil {
		return fmt.Errorf("boot: %w", err)
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read trace: %w", err)
	}
	var events []traceEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("parse trace: %w", err)
	}

	ctx := GetContext()
	go e.Run(ctx)
	defer e.Stop()

	for i, ev := range events {
		hint, err := applyTraceEvent(ctx, e, ev)
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.Op, err)
		}
		fmt.Printf("event %d: %s -> hint=%+v\n", i, ev.Op, hint)
	}
	return nil
}

func applyTraceEvent(ctx context.Context, e *engine.Engine, ev traceEvent) (abi.NextTask, error) {
	switch ev.Op {
	case "dispatch":
		return e.Dispatch(ctx, ev.Task), nil
	case "irq":
		return e.NotifyIRQ(ctx, ev.Task, ev.Mask), nil
	case "tick":
		return e.Tick(ctx, abi.Timestamp(ev.Time)), nil
	case "fault":
		return e.Fault(ctx, ev.Task, abi.PanicFault(ev.Message)), nil
	case "reinitialize":
		return e.Reinitialize(ctx, ev.Task), nil
	default:
		return abi.NextTask{}, fmt.Errorf("unknown op %q", ev.Op)
	}
}
