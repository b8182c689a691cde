// Package main is the entry point for the bookingd binary.
// Its sole responsibility is dispatching to the command tree.
// No business logic belongs here.
package main

import (
	"fmt"
	"os"

	"github.com/example/booking-assistant/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
