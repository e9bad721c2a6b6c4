// qzsl62rtcm reads QZSS L6 frames, decodes the Compact SSR messages in the
// CLAS and MADOCA-PPP streams and writes them out as RTCM3 frames, as a
// readable display, to an MQTT broker or any combination of those.
//
// The input is stdin unless a YAML config file names other inputs, such
// as the serial devices of a receiver:
//
//	qzsl62rtcm -r < clas.l6 > clas.rtcm3
//	qzsl62rtcm -m -s -p 199 < clas.l6
//	qzsl62rtcm -f qzsl6.yaml --metrics :9100
//
// With -r the RTCM frames go to stdout and the display (-m) to stderr.
// Without -r the display goes to stdout.
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
	status := runner.Main(ctx, "qzsl62rtcm", runner.InputL6, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(status)
}
