// Command numerology computes numerology readings from the terminal and
// manages the content entries that override catalogue text.
//
// Usage:
//
//	numerology reading --name "Ada Lovelace" --day 10 --month 12 --tarot
//	numerology reduce 1999
//	numerology binomial 22
//	numerology card 11 --lang it
//	numerology content import overrides.yaml --sqlite content.db
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
