// Command kernctl boots and drives a simulated instance of a statically
// configured microkernel's task/scheduling/IPC core.
package main

import (
	"fmt"
	"os"

	"microkernel-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kernctl:", err)
		os.Exit(1)
	}
}
