// Command fave previews and exports the favorite-button burst animation.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/fave/cmd/fave/cmd"
	"github.com/go-drift/fave/pkg/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var faveErr *errors.Error
		if errors.As(err, &faveErr) {
			errors.Report(faveErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
