package runner

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/kylelemons/godebug/diff"

	"github.com/goblimey/go-ssr/config"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// madocaFrame returns an L6 frame from the MADOCA service, which is
// displayed but not decoded.
func madocaFrame(prn byte) []byte {
	frame := make([]byte, utils.L6FrameLengthBytes)
	copy(frame, []byte{0x1a, 0xcf, 0xfc, 0x1d, prn, 0x21})
	return frame
}

// TestFlags checks the flags of each program.
func TestFlags(t *testing.T) {
	var testData = []struct {
		description string
		input       Input
		args        []string
		want        Options
	}{
		{"short", InputL6, []string{"-m", "-r", "-s", "-t", "-p", "199", "-f", "x.yaml"},
			Options{Message: true, RTCM: true, Statistics: true, Trace: true, PRN: 199, ConfigFile: "x.yaml"}},
		{"long", InputL6, []string{"--source=clas", "--metrics", ":9100", "--log-level", "warn", "--follow"},
			Options{Source: "clas", MetricsAddress: ":9100", LogLevel: "warn", Follow: true}},
		{"HAS", InputHAS, []string{"--format", "binary", "--verify-crc", "-m"},
			Options{HASFormat: "binary", VerifyCRC: true, Message: true}},
	}
	for _, td := range testData {
		t.Run(td.description, func(t *testing.T) {
			var got Options
			fs := NewFlagSet("test", td.input, &got)
			if err := fs.Parse(td.args); err != nil {
				t.Fatal(err)
			}
			if got != td.want {
				t.Errorf("want %+v, got %+v", td.want, got)
			}
		})
	}

	// --prn belongs to the L6 program only.
	var options Options
	fs := NewFlagSet("test", InputHAS, &options)
	fs.SetOutput(&bytes.Buffer{})
	if err := fs.Parse([]string{"--prn", "199"}); err == nil {
		t.Error("want an error for --prn")
	}
}

// TestConfig checks that the command line overrides the config.
func TestConfig(t *testing.T) {
	// No config file.
	conf, err := (&Options{}).Config()
	if err != nil {
		t.Fatal(err)
	}
	if len(conf.Filenames) != 1 || conf.Filenames[0] != config.StdinName {
		t.Errorf("want stdin, got %v", conf.Filenames)
	}
	if !conf.Display {
		t.Error("want the display on")
	}

	// RTCM on stdout turns the display off unless it's asked for.
	conf, err = (&Options{RTCM: true}).Config()
	if err != nil {
		t.Fatal(err)
	}
	if conf.Display {
		t.Error("want the display off")
	}
	conf, err = (&Options{RTCM: true, Message: true, Trace: true, PRN: 195, HASFormat: "page"}).Config()
	if err != nil {
		t.Fatal(err)
	}
	if !conf.Display || conf.Logs.Level != "debug" || conf.PRN != 195 || conf.HAS.Format != config.FormatPage {
		t.Errorf("unexpected config %+v", conf)
	}

	// A config file.
	name := filepath.Join(t.TempDir(), "ssr.yaml")
	if err := os.WriteFile(name, []byte("input: [a]\nsource: clas\nprn: 193\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	conf, err = (&Options{ConfigFile: name, Source: "madoca"}).Config()
	if err != nil {
		t.Fatal(err)
	}
	if conf.Source != "madoca" || conf.PRN != 193 || conf.Display {
		t.Errorf("unexpected config %+v", conf)
	}

	// Bad values.
	for _, options := range []Options{{HASFormat: "xml"}, {LogLevel: "chatty"}, {ConfigFile: name + ".missing"}} {
		if _, err := options.Config(); err == nil {
			t.Errorf("want an error for %+v", options)
		}
	}
}

// TestBuild checks where the output goes.
func TestBuild(t *testing.T) {
	var stdout, stderr bytes.Buffer

	program, err := Build(&config.Config{Display: true}, &Options{RTCM: true}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	defer program.Close()
	sinks := program.Core.Sinks
	if sinks.RTCM == nil || sinks.Display != &stderr || sinks.Publisher != nil || sinks.Metrics != nil {
		t.Errorf("unexpected sinks %+v", sinks)
	}

	rtcmOutput := filepath.Join(t.TempDir(), "out.rtcm3")
	conf := &config.Config{Display: true, RTCMOutput: rtcmOutput, MetricsAddress: "localhost:0"}
	program2, err := Build(conf, &Options{}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	defer program2.Close()
	sinks = program2.Core.Sinks
	if sinks.RTCM == nil || sinks.Display != &stdout || sinks.Metrics == nil {
		t.Errorf("unexpected sinks %+v", sinks)
	}
	if _, err := os.Stat(rtcmOutput); err != nil {
		t.Error(err)
	}

	// MQTT without a broker.
	conf = &config.Config{}
	conf.MQTT.Enabled = true
	if _, err := Build(conf, &Options{}, &stdout, &stderr); err == nil {
		t.Error("want an error")
	}
}

// TestCompressedRTCM checks that the RTCM output is compressed when its
// name ends in .zst.
func TestCompressedRTCM(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.rtcm3"+config.CompressedSuffix)
	var stdout, stderr bytes.Buffer
	program, err := Build(&config.Config{RTCMOutput: name}, &Options{}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	// An empty message makes the shortest frame.
	if err := program.Core.Sinks.RTCM.WriteMessage(&correction.Message{}); err != nil {
		t.Fatal(err)
	}
	program.Close()

	compressed, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer decoder.Close()
	got, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != "d3000047ea4b" {
		t.Errorf("want the empty frame, got %x", got)
	}
}

// TestMainRun checks a complete run from a config file.
func TestMainRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "l6")
	data := append(madocaFrame(199), madocaFrame(194)...)
	if err := os.WriteFile(input, data, 0o644); err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(dir, "ssr.yaml")
	if err := os.WriteFile(name, []byte("input: ["+input+"]\ndisplay: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	status := Main(context.Background(), "qzsl62rtcm", InputL6, []string{"-f", name}, &stdout, &stderr)
	if status != 0 {
		t.Fatalf("want status 0, got %d: %s", status, stderr.String())
	}

	want := strings.Join([]string{
		"199 Hitachi-Ota:0  MADOCA",
		"194 Hitachi-Ota:0  MADOCA",
		"",
	}, "\n")
	if got := stdout.String(); got != want {
		t.Errorf("display mismatch:\n%s", diff.Diff(want, got))
	}

	if status := Main(context.Background(), "x", InputL6, []string{"--colour"}, &stdout, &stderr); status != 2 {
		t.Errorf("want status 2 for a bad flag, got %d", status)
	}
	if status := Main(context.Background(), "x", InputL6, []string{"-h"}, &stdout, &stderr); status != 0 {
		t.Errorf("want status 0 for help, got %d", status)
	}
}

// TestMainCancelled checks that a program waiting for input stops when
// it's told to.
func TestMainCancelled(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "ssr.yaml")
	text := "input: [" + filepath.Join(dir, "absent") + "]\nfollow: true\n"
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	if status := Main(ctx, "qzsl62rtcm", InputL6, []string{"-f", name}, &stdout, &stderr); status != 0 {
		t.Errorf("want status 0, got %d: %s", status, stderr.String())
	}
}
