// bannerctl changes and inspects memorial banners from the terminal.
package main

import (
	"os"

	"memorial-banner/cmd/bannerctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
