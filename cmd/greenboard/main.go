// Command greenboard is the terminal surface of the building-energy
// dashboard: load the dataset once, then summarize, filter interactively,
// render charts to PNG, or export the active set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
