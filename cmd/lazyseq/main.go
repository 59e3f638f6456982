// Command lazyseq runs YAML pipeline documents over lazy sequences and
// replays the sequence walkthroughs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
