package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"go.bug.st/serial"

	"github.com/goblimey/go-ssr/logging"
	"github.com/goblimey/go-ssr/publish"
)

// TestParse checks that the right values are produced from a config file.
func TestParse(t *testing.T) {
	reader := strings.NewReader(`
input: ["a", "b"]
source: clas
timeout: 1
sleep_time: 3
wait_time_on_eof_millis: 4
timeout_on_eof_seconds: 5
follow: true
prn: 199
rtcm_output: out.rtcm3
display: true
statistics: true
logs:
  directory: logs
  level: debug
  max_size_mb: 10
metrics_address: ":9100"
mqtt:
  enabled: true
  broker: tcp://localhost:1883
  topic_prefix: gnss
  qos: 1
has:
  verify_crc: true
  format: binary
`)

	config, err := Parse(reader)
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Filenames:                    []string{"a", "b"},
		Source:                       "clas",
		LostInputConnectionTimeout:   1,
		LostInputConnectionSleepTime: 3,
		WaitTimeOnEOF:                4,
		TimeoutOnEOF:                 5,
		Follow:                       true,
		PRN:                          199,
		RTCMOutput:                   "out.rtcm3",
		Display:                      true,
		Statistics:                   true,
		Logs:                         logging.Config{Directory: "logs", Level: "debug", MaxSizeMB: 10},
		MetricsAddress:               ":9100",
		MQTT: publish.Config{
			Enabled: true, Broker: "tcp://localhost:1883", TopicPrefix: "gnss", QoS: 1,
		},
		HAS: HASConfig{VerifyCRC: true, Format: FormatBinary},
	}
	if diff := cmp.Diff(want, *config, cmp.AllowUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

// TestDefaults checks the values filled in for an empty config.
func TestDefaults(t *testing.T) {
	for _, config := range []*Config{Default(), mustParse(t, "")} {
		if config.Source != defaultSource {
			t.Errorf("want source %s, got %s", defaultSource, config.Source)
		}
		if config.LostInputConnectionSleepTime != defaultSleepTime {
			t.Errorf("want sleep time %d, got %d", defaultSleepTime, config.LostInputConnectionSleepTime)
		}
		if config.WaitTimeOnEOF != defaultWaitOnEOF {
			t.Errorf("want wait time %d, got %d", defaultWaitOnEOF, config.WaitTimeOnEOF)
		}
		if config.HAS.Format != FormatCNAV {
			t.Errorf("want format %s, got %s", FormatCNAV, config.HAS.Format)
		}
		if config.mode != nil {
			t.Error("want no serial mode")
		}
	}
}

func mustParse(t *testing.T, text string) *Config {
	t.Helper()
	config, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	return config
}

// TestParseErrors checks that bad values are rejected.
func TestParseErrors(t *testing.T) {
	var testData = []struct {
		description string
		text        string
		want        string
	}{
		{"unknown field", "colour: red\n", "field colour not found"},
		{"bad parity", "serial:\n  parity: weird\n", "illegal parity value weird"},
		{"bad data bits", "serial:\n  data_bits: 9\n", "data bits must be 5-8, got 9"},
		{"bad stop bits", "serial:\n  stop_bits: 3\n", "stop bit value must be 1, 1.5 or 2"},
		{"bad status bit", "serial:\n  initial_status_bits: [cts]\n", "illegal initial status bit value cts"},
		{"bad format", "has:\n  format: xml\n", `illegal HAS format "xml"`},
		{"bad level", "logs:\n  level: chatty\n", `unknown log level "chatty"`},
	}
	for _, td := range testData {
		t.Run(td.description, func(t *testing.T) {
			_, err := Parse(strings.NewReader(td.text))
			if err == nil {
				t.Fatal("want an error")
			}
			if !strings.Contains(err.Error(), td.want) {
				t.Errorf("want %q in %q", td.want, err.Error())
			}
		})
	}
}

// TestSerialMode checks the conversion of serial settings.
func TestSerialMode(t *testing.T) {
	s := SerialConfig{
		Speed:             115200,
		Parity:            "even_parity",
		DataBits:          7,
		StopBits:          2,
		InitialStatusBits: []string{"DTR"},
	}
	got, err := s.Mode()
	if err != nil {
		t.Fatal(err)
	}
	want := &serial.Mode{
		BaudRate:          115200,
		Parity:            serial.EvenParity,
		DataBits:          7,
		StopBits:          serial.TwoStopBits,
		InitialStatusBits: &serial.ModemOutputBits{DTR: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mode mismatch (-want +got):\n%s", diff)
	}

	// The defaults.
	got, err = (&SerialConfig{}).Mode()
	if err != nil {
		t.Fatal(err)
	}
	if got.BaudRate != defaultBaudRate || got.Parity != serial.NoParity || got.StopBits != serial.OneStopBit {
		t.Errorf("unexpected default mode %+v", got)
	}
}

// TestGetConfigFromFile checks reading a config file.
func TestGetConfigFromFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ssr.yaml")
	if err := os.WriteFile(name, []byte("input: [x]\nsource: madoca\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := GetConfigFromFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if config.Source != "madoca" || len(config.Filenames) != 1 {
		t.Errorf("unexpected config %+v", config)
	}

	if _, err := GetConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("want an error for a missing file")
	}
}

// TestWaitAndConnectToInput checks that the first input that opens is
// used.
func TestWaitAndConnectToInput(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present")
	if err := os.WriteFile(present, []byte("L6"), 0o644); err != nil {
		t.Fatal(err)
	}
	config := Default()
	config.Filenames = []string{filepath.Join(dir, "absent"), present}

	reader, err := config.WaitAndConnectToInput(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "L6" {
		t.Errorf("want L6, got %q", data)
	}
}

// TestWaitAndConnectToInputGivesUp checks that the search stops when the
// context is cancelled.
func TestWaitAndConnectToInputGivesUp(t *testing.T) {
	config := Default()
	config.Filenames = []string{filepath.Join(t.TempDir(), "absent")}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := config.WaitAndConnectToInput(ctx, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("want DeadlineExceeded, got %v", err)
	}

	empty := Default()
	if _, err := empty.WaitAndConnectToInput(context.Background(), nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("want ErrNoInput, got %v", err)
	}
}

// TestCompressedInput checks that a .zst input is decompressed.
func TestCompressedInput(t *testing.T) {
	name := filepath.Join(t.TempDir(), "frames.l6"+CompressedSuffix)
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := encoder.EncodeAll([]byte("L6 frames"), nil)
	encoder.Close()
	if err := os.WriteFile(name, compressed, 0o644); err != nil {
		t.Fatal(err)
	}

	config := Default()
	config.Filenames = []string{name}
	reader, err := config.WaitAndConnectToInput(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "L6 frames" {
		t.Errorf("want L6 frames, got %q", data)
	}
}
