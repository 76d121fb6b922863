// Command variantgen generates a variant set offline from a catalog snapshot
// and a configuration file.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
