// The runner package holds the command line handling shared by the SSR
// programs.  Each program is a thin main that calls Main.
//
// Without a config file the program reads the standard input.  With --rtcm
// the RTCM frames go to stdout and the readable display goes to stderr,
// and only if --message is given.  Without --rtcm the display goes to
// stdout.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"

	"github.com/goblimey/go-ssr/apps/appcore"
	"github.com/goblimey/go-ssr/config"
	"github.com/goblimey/go-ssr/logging"
	"github.com/goblimey/go-ssr/publish"
	"github.com/goblimey/go-ssr/ssr/metrics"
	"github.com/goblimey/go-ssr/ssr/rtcm3"
)

// stopTimeout is how long Main waits for the decoder after it's told to
// stop.
const stopTimeout = time.Second

// Input says which kind of data a program decodes.
type Input int

const (
	// InputL6 is a stream of QZSS L6 frames.
	InputL6 Input = iota
	// InputHAS is Galileo E6B data in one of the HAS formats.
	InputHAS
)

// Options holds the command line settings.
type Options struct {
	ConfigFile     string
	Message        bool
	RTCM           bool
	Statistics     bool
	Trace          bool
	Follow         bool
	PRN            uint
	Source         string
	MetricsAddress string
	LogLevel       string
	HASFormat      string
	VerifyCRC      bool
}

// NewFlagSet creates the flag set for a program, bound to options.
func NewFlagSet(name string, input Input, options *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&options.ConfigFile, "config", "f", "", "YAML config file")
	fs.BoolVarP(&options.Message, "message", "m", false, "display the messages")
	fs.BoolVarP(&options.Statistics, "statistics", "s", false, "display statistics after each message")
	fs.BoolVarP(&options.Trace, "trace", "t", false, "log at debug level")
	fs.BoolVar(&options.Follow, "follow", false, "keep looking for input when it runs out")
	fs.StringVar(&options.Source, "source", "", "name of the stream in metrics and MQTT topics")
	fs.StringVar(&options.MetricsAddress, "metrics", "", "listen address for Prometheus metrics")
	fs.StringVar(&options.LogLevel, "log-level", "", "debug, info, warn or error")
	switch input {
	case InputL6:
		fs.BoolVarP(&options.RTCM, "rtcm", "r", false, "write RTCM frames to stdout")
		fs.UintVarP(&options.PRN, "prn", "p", 0, "decode only frames from this QZSS PRN")
	case InputHAS:
		fs.StringVar(&options.HASFormat, "format", "", "input format: cnav, binary or page")
		fs.BoolVar(&options.VerifyCRC, "verify-crc", false, "check the CRC of each C/NAV page")
	}
	return fs
}

// Config produces the config.  It's read from the config file if there is
// one.  Otherwise the input is stdin.  The command line overrides the file.
func (options *Options) Config() (*config.Config, error) {
	var conf *config.Config
	if options.ConfigFile != "" {
		var err error
		conf, err = config.GetConfigFromFile(options.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		conf = config.Default()
		conf.Filenames = []string{config.StdinName}
		conf.Display = !options.RTCM
	}

	if options.Message {
		conf.Display = true
	}
	if options.Statistics {
		conf.Statistics = true
	}
	if options.Follow {
		conf.Follow = true
	}
	if options.PRN != 0 {
		conf.PRN = options.PRN
	}
	if options.Source != "" {
		conf.Source = options.Source
	}
	if options.MetricsAddress != "" {
		conf.MetricsAddress = options.MetricsAddress
	}
	if options.VerifyCRC {
		conf.HAS.VerifyCRC = true
	}
	if options.HASFormat != "" {
		switch options.HASFormat {
		case config.FormatCNAV, config.FormatBinary, config.FormatPage:
			conf.HAS.Format = options.HASFormat
		default:
			return nil, fmt.Errorf("illegal HAS format %q", options.HASFormat)
		}
	}
	switch {
	case options.Trace:
		conf.Logs.Level = "debug"
	case options.LogLevel != "":
		if _, err := logging.ParseLevel(options.LogLevel); err != nil {
			return nil, err
		}
		conf.Logs.Level = options.LogLevel
	}
	return conf, nil
}

// Program is a configured SSR program, ready to run.
type Program struct {
	Core    *appcore.AppCore
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	closers   []io.Closer
	publisher *publish.Publisher
}

// Build connects the sinks that the config and options ask for.  stdout
// and stderr are the program's standard output and error.
func Build(conf *config.Config, options *Options, stdout, stderr io.Writer) (*Program, error) {
	logger, logCloser, err := logging.New(conf.Logs, stderr)
	if err != nil {
		return nil, err
	}
	program := &Program{Logger: logger, closers: []io.Closer{logCloser}}

	var sinks appcore.Sinks
	switch {
	case options.RTCM:
		sinks.RTCM = rtcm3.NewWriter(stdout)
	case conf.RTCMOutput != "":
		file, err := os.OpenFile(conf.RTCMOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			program.Close()
			return nil, fmt.Errorf("opening RTCM output: %w", err)
		}
		var out io.Writer = file
		if strings.HasSuffix(conf.RTCMOutput, config.CompressedSuffix) {
			encoder, err := zstd.NewWriter(file)
			if err != nil {
				file.Close()
				program.Close()
				return nil, err
			}
			// The encoder is flushed before the file is closed.
			program.closers = append(program.closers, encoder)
			out = encoder
		}
		program.closers = append(program.closers, file)
		sinks.RTCM = rtcm3.NewWriter(out)
	}

	if conf.Display {
		if options.RTCM {
			sinks.Display = stderr
		} else {
			sinks.Display = stdout
		}
	}

	if conf.MQTT.Enabled {
		publisher, err := publish.Connect(conf.MQTT, logger)
		if err != nil {
			program.Close()
			return nil, err
		}
		program.publisher = publisher
		sinks.Publisher = publisher
	}

	if conf.MetricsAddress != "" {
		program.Metrics = metrics.New()
		sinks.Metrics = program.Metrics
	}

	program.Core = appcore.New(conf, sinks, logger)
	return program, nil
}

// Run serves the metrics, if they are wanted, and decodes the input until
// it runs out or ctx is cancelled.
func (program *Program) Run(ctx context.Context, input Input) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if program.Metrics != nil {
		go func() {
			err := program.Metrics.Serve(ctx, program.Core.Conf.MetricsAddress, program.Logger)
			if err != nil {
				program.Logger.Error("metrics server", "error", err)
			}
		}()
	}

	if input == InputHAS {
		return program.Core.HandleHAS(ctx)
	}
	return program.Core.HandleL6(ctx)
}

// Close disconnects from the broker and closes the output files.
func (program *Program) Close() {
	program.publisher.Disconnect()
	for _, c := range program.closers {
		c.Close()
	}
}

// Main runs a program with the given arguments and returns the exit
// status.
func Main(ctx context.Context, name string, input Input, args []string, stdout, stderr io.Writer) int {
	var options Options
	fs := NewFlagSet(name, input, &options)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	conf, err := options.Config()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	program, err := Build(conf, &options, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	defer program.Close()

	done := make(chan error, 1)
	go func() { done <- program.Run(ctx, input) }()
	select {
	case err = <-done:
	case <-ctx.Done():
		// A blocked read of stdin can't be interrupted, so only wait a
		// short time for the decoder to finish.
		select {
		case err = <-done:
		case <-time.After(stopTimeout):
			err = ctx.Err()
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		program.Logger.Error("stopped", "error", err)
		return 1
	}
	return 0
}
