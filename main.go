// ABOUTME: Entry point for the finflow CLI
// ABOUTME: Command-line front-end for the finflow personal-finance API

package main

import (
	"fmt"
	"os"

	"github.com/jmercadier/finflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
