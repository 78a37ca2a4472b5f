// Package publish pushes expanded trips to an MQTT broker so downstream
// consumers (dashboards, replay tools) can pick them up without polling
// the HTTP API.
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/dutchev/chargemap/internal/models"
)

// Publisher writes trip batches to a single MQTT topic.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// NewPublisher connects to the broker. brokerURL uses the usual
// tcp://host:port form.
func NewPublisher(brokerURL, clientID, topic string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", brokerURL, err)
	}

	log.WithFields(log.Fields{"broker": brokerURL, "topic": topic}).Info("Connected to MQTT broker")
	return &Publisher{client: client, topic: topic}, nil
}

// tripBatch is the published payload.
type tripBatch struct {
	Trips       []models.Trip `json:"trips"`
	Count       int           `json:"count"`
	PublishedAt time.Time     `json:"published_at"`
}

// PublishTrips sends the full trip set as one retained message, so late
// subscribers receive the current batch immediately.
func (p *Publisher) PublishTrips(trips []models.Trip) error {
	payload, err := json.Marshal(tripBatch{
		Trips:       trips,
		Count:       len(trips),
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal trip batch: %w", err)
	}

	token := p.client.Publish(p.topic, 1, true, payload)
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("timed out publishing to %s", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}

	log.WithFields(log.Fields{"topic": p.topic, "trips": len(trips)}).Info("Published trip batch")
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
