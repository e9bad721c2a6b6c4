// The config package reads the YAML configuration shared by the SSR
// programs, and connects to the input stream that it names.
//
// An example config file:
//
//	input: ["/dev/ttyACM0", "/dev/ttyACM1"]
//	source: clas
//	serial:
//	  speed: 115200
//	  parity: no_parity
//	timeout: 1
//	sleep_time: 2
//	follow: true
//	rtcm_output: /var/spool/ssr/clas.rtcm3
//	display: true
//	logs:
//	  directory: /var/log/ssr
//	  level: info
//	  max_size_mb: 10
//	metrics_address: ":9100"
//	mqtt:
//	  enabled: true
//	  broker: tcp://localhost:1883
//	  topic_prefix: ssr
//	has:
//	  verify_crc: true
//	  format: cnav
//
// This example suits a program reading L6 frames from a receiver over a
// serial USB connection.  The input list names the Linux devices that may
// represent the connection.  The program tries each in turn until one
// opens, and tries again if the stream dies.  The name "-" means the
// standard input.  Files whose names end in ".zst" are zstd compressed,
// which suits recorded L6 or E6B data.  The RTCM output is compressed in
// the same way if its name ends in ".zst".
package config

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
	"go.bug.st/serial"
	"gopkg.in/yaml.v3"

	"github.com/goblimey/go-ssr/logging"
	"github.com/goblimey/go-ssr/publish"
)

// StdinName is the input name that means the standard input.
const StdinName = "-"

// CompressedSuffix marks an input or output file that's zstd compressed.
const CompressedSuffix = ".zst"

// The HAS input formats.
const (
	FormatCNAV   = "cnav"
	FormatBinary = "binary"
	FormatPage   = "page"
)

// Defaults for values that aren't in the file.
const (
	defaultSleepTime = 2
	defaultBaudRate  = 9600
	defaultSource    = "ssr"
	defaultHASFormat = FormatCNAV
	defaultWaitOnEOF = 100
)

// ErrNoInput is returned by WaitAndConnectToInput when there's nothing to
// connect to.
var ErrNoInput = errors.New("no input files configured")

// SerialConfig holds the settings for a serial input device.
type SerialConfig struct {
	// Speed is the line speed in bits per second.
	Speed int `yaml:"speed"`

	// Parity is no_parity (default), odd_parity, even_parity,
	// mark_parity or space_parity.
	Parity string `yaml:"parity"`

	// DataBits is the number of data bits in the byte: 5-8.
	DataBits int `yaml:"data_bits"`

	// StopBits is 1, 1.5 or 2.
	StopBits float32 `yaml:"stop_bits"`

	// InitialStatusBits holds "dtr" and/or "rts" to set those lines.
	InitialStatusBits []string `yaml:"initial_status_bits"`
}

// HASConfig controls Galileo HAS input.
type HASConfig struct {
	// VerifyCRC turns on the CRC check of each C/NAV page.
	VerifyCRC bool `yaml:"verify_crc"`

	// Format is "cnav" for $CNAV text lines, "binary" for 63-byte C/NAV
	// records or "page" for bare 56-byte HAS pages.
	Format string `yaml:"format"`
}

// Config contains the values from the config file.
type Config struct {
	// Filenames is the list of input files or devices, tried in order.
	Filenames []string `yaml:"input"`

	// Source names the stream in metrics and MQTT topics.
	Source string `yaml:"source"`

	// Serial is set if the inputs are serial devices.
	Serial *SerialConfig `yaml:"serial"`

	// LostInputConnectionTimeout is the read timeout in seconds.
	LostInputConnectionTimeout uint `yaml:"timeout"`
	// LostInputConnectionSleepTime is the time in seconds to sleep
	// between connection attempts.
	LostInputConnectionSleepTime uint `yaml:"sleep_time"`
	// WaitTimeOnEOF is the time in milliseconds to wait after end of
	// file before reading again.
	WaitTimeOnEOF uint `yaml:"wait_time_on_eof_millis"`
	// TimeoutOnEOF is how long in seconds to keep retrying after end of
	// file before giving up.  Zero means stop at the first end of file.
	TimeoutOnEOF uint `yaml:"timeout_on_eof_seconds"`

	// RTCMOutput is the file that RTCM frames are written to.  Empty
	// means none are written.
	RTCMOutput string `yaml:"rtcm_output"`

	// Follow keeps the program looking for input when the current input
	// is exhausted.  It suits serial devices that come and go.
	Follow bool `yaml:"follow"`

	// PRN selects the QZSS satellite whose L6 frames are decoded.  Zero
	// means all frames.
	PRN uint `yaml:"prn"`

	// Display turns on the readable display on stdout.
	Display bool `yaml:"display"`

	// Statistics turns on the statistics line after each message.
	Statistics bool `yaml:"statistics"`

	Logs logging.Config `yaml:"logs"`

	// MetricsAddress is the listen address for the Prometheus endpoint.
	// Empty means no endpoint.
	MetricsAddress string `yaml:"metrics_address"`

	MQTT publish.Config `yaml:"mqtt"`

	HAS HASConfig `yaml:"has"`

	mode *serial.Mode
}

// GetConfigFromFile reads the config from the named file.
func GetConfigFromFile(configFileName string) (*Config, error) {
	file, err := os.Open(configFileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads the config from the given source and fills in defaults.
func Parse(source io.Reader) (*Config, error) {
	var config Config
	dec := yaml.NewDecoder(source)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse the config: %w", err)
	}
	if err := config.setDefaults(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns the config used when there's no config file.
func Default() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

func (config *Config) setDefaults() error {
	if config.Source == "" {
		config.Source = defaultSource
	}
	if config.LostInputConnectionSleepTime == 0 {
		config.LostInputConnectionSleepTime = defaultSleepTime
	}
	if config.WaitTimeOnEOF == 0 {
		config.WaitTimeOnEOF = defaultWaitOnEOF
	}
	if config.HAS.Format == "" {
		config.HAS.Format = defaultHASFormat
	}
	switch config.HAS.Format {
	case FormatCNAV, FormatBinary, FormatPage:
	default:
		return fmt.Errorf("config: illegal HAS format %q", config.HAS.Format)
	}
	if _, err := logging.ParseLevel(config.Logs.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if config.Serial != nil {
		mode, err := config.Serial.Mode()
		if err != nil {
			return err
		}
		config.mode = mode
	}
	return nil
}

// Mode converts the settings to a serial.Mode.
func (s *SerialConfig) Mode() (*serial.Mode, error) {
	mode := serial.Mode{BaudRate: defaultBaudRate}
	if s.Speed != 0 {
		mode.BaudRate = s.Speed
	}

	switch s.Parity {
	case "", "no_parity":
		mode.Parity = serial.NoParity
	case "odd_parity":
		mode.Parity = serial.OddParity
	case "even_parity":
		mode.Parity = serial.EvenParity
	case "mark_parity":
		mode.Parity = serial.MarkParity
	case "space_parity":
		mode.Parity = serial.SpaceParity
	default:
		return nil, errors.New("config: illegal parity value " + s.Parity)
	}

	// Must be 5-8.
	if s.DataBits > 0 {
		if s.DataBits < 5 || s.DataBits > 8 {
			return nil, fmt.Errorf("config: data bits must be 5-8, got %d", s.DataBits)
		}
		mode.DataBits = s.DataBits
	}

	switch s.StopBits {
	case 0, 1:
		mode.StopBits = serial.OneStopBit
	case 1.5:
		mode.StopBits = serial.OnePointFiveStopBits
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("config: stop bit value must be 1, 1.5 or 2.  Got %g", s.StopBits)
	}

	if len(s.InitialStatusBits) > 0 {
		var bits serial.ModemOutputBits
		for _, b := range s.InitialStatusBits {
			switch strings.ToLower(b) {
			case "dtr":
				bits.DTR = true
			case "rts":
				bits.RTS = true
			default:
				return nil, errors.New("config: illegal initial status bit value " + b)
			}
		}
		mode.InitialStatusBits = &bits
	}

	return &mode, nil
}

// WaitAndConnectToInput tries repeatedly to connect to one of the input
// files.  It gives up when ctx is cancelled.
func (config *Config) WaitAndConnectToInput(ctx context.Context, logger *slog.Logger) (io.ReadCloser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(config.Filenames) == 0 {
		return nil, ErrNoInput
	}
	sleepTime := time.Duration(config.LostInputConnectionSleepTime) * time.Second
	for {
		reader := config.findInput(logger)
		if reader != nil {
			logger.Info("connected to GNSS source")
			return reader, nil
		}
		logger.Debug("failed to connect to GNSS source, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleepTime):
		}
	}
}

// findInput returns a connection to the first input in the list that can
// be opened for reading, or nil.
func (config *Config) findInput(logger *slog.Logger) io.ReadCloser {
	// The device names "/dev/ttyACM0" etc on a Raspberry Pi don't relate to
	// the physical USB sockets.  If the receiver loses power briefly the
	// connection comes back as the next name, so search the list each time.
	for _, name := range config.Filenames {
		if name == StdinName {
			return io.NopCloser(os.Stdin)
		}
		if config.mode != nil {
			port, err := serial.Open(name, config.mode)
			if err != nil {
				continue
			}
			if config.LostInputConnectionTimeout > 0 {
				port.SetReadTimeout(time.Duration(config.LostInputConnectionTimeout) * time.Second)
			}
			logger.Info("found serial device", "name", name)
			return port
		}
		file, err := os.Open(name)
		if err != nil {
			continue
		}
		logger.Info("found input", "name", name)
		if strings.HasSuffix(name, CompressedSuffix) {
			decoder, err := zstd.NewReader(file)
			if err != nil {
				logger.Warn("not a zstd file", "name", name, "error", err)
				file.Close()
				continue
			}
			return &zstdFile{Decoder: decoder, file: file}
		}
		return file
	}
	return nil
}

// zstdFile decompresses a file as it's read.
type zstdFile struct {
	*zstd.Decoder
	file *os.File
}

// Close releases the decoder and closes the file.
func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}
