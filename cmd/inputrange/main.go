// Command inputrange runs the range input demo and renders slider previews.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/inputrange/cmd/inputrange/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
