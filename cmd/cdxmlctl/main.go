// Command cdxmlctl parses CDXML reaction schemes into role-tagged JSON and
// can rebuild CDXML from a (possibly edited) result, replacing the
// library's example program with a proper CLI and a watch-and-preview mode.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
