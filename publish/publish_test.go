package publish

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/go-cmp/cmp"

	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/has"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// doneToken is an mqtt.Token that has already completed.
type doneToken struct{}

func (doneToken) Wait() bool                     { return true }
func (doneToken) WaitTimeout(time.Duration) bool { return true }
func (doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (doneToken) Error() error { return nil }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient records what's published.  The embedded interface supplies
// the methods that the tests don't use.
type fakeClient struct {
	mqtt.Client

	mutex        sync.Mutex
	published    []published
	connected    bool
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.published = append(c.published, published{topic, qos, retained, payload.([]byte)})
	return doneToken{}
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Disconnect(quiesce uint) { c.disconnected = true }

func fixedTime() time.Time {
	return time.Unix(1700000000, 0)
}

// TestTopic checks the topic names.
func TestTopic(t *testing.T) {
	var testData = []struct {
		prefix string
		source string
		kind   correction.Kind
		want   string
	}{
		{"", "clas", correction.KindOrbit, "ssr/clas/orbit"},
		{"gnss/ssr", "e6b", correction.KindHAS, "gnss/ssr/e6b/has"},
		{"x", "l6", correction.KindCodePhaseBias, "x/l6/code-phase-bias"},
	}
	for _, td := range testData {
		p := New(&fakeClient{}, Config{TopicPrefix: td.prefix}, nil)
		got := p.Topic(td.source, td.kind)
		if got != td.want {
			t.Errorf("want %s, got %s", td.want, got)
		}
	}
}

// TestPublishCSSR checks the topic and JSON published for a CSSR message.
func TestPublishCSSR(t *testing.T) {
	client := &fakeClient{}
	p := New(client, Config{QoS: 1, Retain: true}, nil)
	p.now = fixedTime

	m := &correction.Message{
		Header: correction.Header{MessageNumber: 4073, Subtype: 3, HourlyEpoch: 120, IOD: 2},
		Record: &correction.ClockCorrection{
			Satellites: []correction.SatelliteClock{
				{Satellite: signal.Satellite{System: signal.GPS, Slot: 5}, C0: correction.Scaled(100, 0.0016)},
			},
		},
	}
	if err := p.PublishCSSR("clas", m); err != nil {
		t.Fatal(err)
	}

	if len(client.published) != 1 {
		t.Fatalf("want 1 message, got %d", len(client.published))
	}
	got := client.published[0]
	if got.topic != "ssr/clas/clock" {
		t.Errorf("want topic ssr/clas/clock, got %s", got.topic)
	}
	if got.qos != 1 || !got.retained {
		t.Errorf("want qos 1 retained, got %d %v", got.qos, got.retained)
	}

	var payload struct {
		Timestamp int64
		Source    string
		Kind      string
		Header    struct{ Subtype, HourlyEpoch, IOD uint }
	}
	if err := json.Unmarshal(got.payload, &payload); err != nil {
		t.Fatal(err)
	}
	want := struct {
		Timestamp int64
		Source    string
		Kind      string
		Header    struct{ Subtype, HourlyEpoch, IOD uint }
	}{1700000000, "clas", "clock", struct{ Subtype, HourlyEpoch, IOD uint }{3, 120, 2}}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

// TestPublishHAS checks that a HAS message goes to the has topic without a
// CSSR header.
func TestPublishHAS(t *testing.T) {
	client := &fakeClient{}
	p := New(client, Config{TopicPrefix: "gal"}, nil)
	p.now = fixedTime

	m := &has.Message{Header: has.Header{TOH: 300, MaskID: 4, IODSetID: 1}}
	if err := p.PublishHAS("e6b", m); err != nil {
		t.Fatal(err)
	}
	got := client.published[0]
	if got.topic != "gal/e6b/has" {
		t.Errorf("want topic gal/e6b/has, got %s", got.topic)
	}
	var payload map[string]any
	if err := json.Unmarshal(got.payload, &payload); err != nil {
		t.Fatal(err)
	}
	if _, ok := payload["header"]; ok {
		t.Error("HAS payload should not have a CSSR header")
	}
	record, ok := payload["record"].(map[string]any)
	if !ok {
		t.Fatalf("record missing from %s", got.payload)
	}
	if record["TOH"] != 300.0 {
		t.Errorf("want TOH 300, got %v", record["TOH"])
	}
}

// TestConnectWithoutBroker checks that Connect wants a broker.
func TestConnectWithoutBroker(t *testing.T) {
	if _, err := Connect(Config{}, nil); !errors.Is(err, ErrNoBroker) {
		t.Errorf("want ErrNoBroker, got %v", err)
	}
}

// TestDisconnect checks that Disconnect only disconnects a connected client.
func TestDisconnect(t *testing.T) {
	idle := &fakeClient{}
	New(idle, Config{}, nil).Disconnect()
	if idle.disconnected {
		t.Error("disconnected a client that wasn't connected")
	}

	live := &fakeClient{connected: true}
	New(live, Config{}, nil).Disconnect()
	if !live.disconnected {
		t.Error("didn't disconnect")
	}

	var nilPublisher *Publisher
	nilPublisher.Disconnect()
}

// TestGenerateClientID checks that client IDs differ.
func TestGenerateClientID(t *testing.T) {
	a, b := generateClientID(), generateClientID()
	if !strings.HasPrefix(a, "go-ssr_") || len(a) != len("go-ssr_")+8 {
		t.Errorf("unexpected client ID %q", a)
	}
	if a == b {
		t.Errorf("want different IDs, got %q twice", a)
	}
}
