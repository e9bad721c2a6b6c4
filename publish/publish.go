// The publish package sends decoded corrections to an MQTT broker as JSON.
// Each record goes to the topic <prefix>/<source>/<kind>, for example
// ssr/clas/orbit.
package publish

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/has"
)

// ErrNoBroker is returned by Connect when no broker is configured.
var ErrNoBroker = errors.New("no MQTT broker configured")

// Config is the MQTT part of the configuration.
type Config struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
	Retain      bool   `yaml:"retain"`
}

// Payload is the JSON document published for each record.
type Payload struct {
	Timestamp int64              `json:"timestamp"`
	Source    string             `json:"source"`
	Kind      correction.Kind    `json:"kind"`
	Header    *correction.Header `json:"header,omitempty"`
	Record    any                `json:"record"`
}

// Publisher publishes records to an MQTT broker.
type Publisher struct {
	client mqtt.Client
	config Config
	logger *slog.Logger

	// now gives the timestamp.  Tests replace it.
	now func() time.Time
}

// generateClientID creates a random client ID for the MQTT connection.
func generateClientID() string {
	return "go-ssr_" + uuid.New().String()[:8]
}

// Connect connects to the broker and returns a Publisher.
func Connect(config Config, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Broker == "" {
		return nil, ErrNoBroker
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	if config.ClientID == "" {
		opts.SetClientID(generateClientID())
	} else {
		opts.SetClientID(config.ClientID)
	}
	if config.Username != "" {
		opts.SetUsername(config.Username)
	}
	if config.Password != "" {
		opts.SetPassword(config.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("MQTT connected", "broker", config.Broker)
	})
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", "error", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return New(client, config, logger), nil
}

// New creates a Publisher that uses an existing client.
func New(client mqtt.Client, config Config, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	if config.TopicPrefix == "" {
		config.TopicPrefix = "ssr"
	}
	return &Publisher{client: client, config: config, logger: logger, now: time.Now}
}

// Topic returns the topic for a record of the given kind.
func (p *Publisher) Topic(source string, kind correction.Kind) string {
	return fmt.Sprintf("%s/%s/%s", p.config.TopicPrefix, source, kind)
}

// PublishCSSR publishes a decoded CSSR message.
func (p *Publisher) PublishCSSR(source string, m *correction.Message) error {
	header := m.Header
	return p.publish(source, m.Record.Kind(), &header, m.Record)
}

// PublishHAS publishes a decoded HAS message.
func (p *Publisher) PublishHAS(source string, m *has.Message) error {
	return p.publish(source, m.Kind(), nil, m)
}

func (p *Publisher) publish(source string, kind correction.Kind, header *correction.Header, record any) error {
	payload := Payload{
		Timestamp: p.now().Unix(),
		Source:    source,
		Kind:      kind,
		Header:    header,
		Record:    record,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}

	topic := p.Topic(source, kind)
	token := p.client.Publish(topic, p.config.QoS, p.config.Retain, data)

	// Wait for completion in the background.
	go func() {
		if token.Wait() && token.Error() != nil {
			p.logger.Warn("MQTT publish failed", "topic", topic, "error", token.Error())
		}
	}()

	return nil
}

// Disconnect disconnects from the broker.
func (p *Publisher) Disconnect() {
	if p != nil && p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		p.logger.Info("MQTT disconnected")
	}
}
