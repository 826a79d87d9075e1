package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// main runs the listpub command tree. A cancelled context means the user
// interrupted the run, so no error is printed for it.
func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
