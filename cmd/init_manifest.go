package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"microkernel-go/image"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default boot manifest",
	Long:  `Generate a minimal two-task boot manifest (a supervisor and an idle task) to stdout.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func defaultManifest() image.Manifest {
	return image.Manifest{
		FaultNotification: 0x0000_0001,
		Tasks: []image.TaskDesc{
			{
				Name:              "supervisor",
				Priority:          0,
				NotificationMask:  0x0000_0001,
				InitiallyRunnable: true,
				Regions: []image.RegionSpec{
					{Base: 0x2000_0000, Length: 0x0000_4000, Read: true, Write: true},
				},
			},
			{
				Name:              "idle",
				Priority:          255,
				InitiallyRunnable: true,
			},
		},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(defaultManifest())
}
