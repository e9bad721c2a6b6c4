// go-ssr reads QZSS L6 frames from stdin, decodes the Compact SSR
// messages in them and writes a readable form to stdout.  At the end it
// prints the number of messages of each kind.
//
// The programs in apps/ do the same with more control over the input and
// output.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/goblimey/go-ssr/apps/appcore"
	"github.com/goblimey/go-ssr/config"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/has"
)

// counter is a publisher that counts the messages of each kind.
type counter map[correction.Kind]int

func (c counter) PublishCSSR(_ string, m *correction.Message) error {
	c[m.Record.Kind()]++
	return nil
}

func (c counter) PublishHAS(_ string, m *has.Message) error {
	c[m.Kind()]++
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conf := config.Default()
	messageCount := make(counter)
	sinks := appcore.Sinks{Display: os.Stdout, Publisher: messageCount}
	appCore := appcore.New(conf, sinks, logger)

	if err := appCore.HandleL6UntilEOF(os.Stdin); err != nil {
		logger.Error("reading stdin", "error", err)
		os.Exit(1)
	}

	kinds := maps.Keys(messageCount)
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Printf("%-16s %6d\n", k, messageCount[k])
	}
}
