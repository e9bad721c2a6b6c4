// gale62rtcm reads Galileo E6B data, recovers the High Accuracy Service
// messages from the pages and decodes them.  The result is displayed and
// can be sent to an MQTT broker.
//
// The input is stdin unless a YAML config file names other inputs.  It's
// in one of three formats, chosen by --format or the config:
//
//	cnav    $CNAV text lines as logged by a receiver (the default)
//	binary  63-byte C/NAV records
//	page    bare 56-byte HAS pages
//
// For example:
//
//	gale62rtcm -s < e6b.txt
//	gale62rtcm --format page --statistics < has.bin
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/goblimey/go-ssr/apps/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := runner.Main(ctx, "gale62rtcm", runner.InputHAS, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(status)
}
