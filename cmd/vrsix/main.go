// vrsix prepares the SQLite database that indexes VRS variant locations by
// source file URI, and removes the engine's write-ahead-log side files.
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
