package tracking

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"postal-pickup-api/internal/logger"
	"postal-pickup-api/pkg/mqtt"
)

// Event is the message fanned out on every status change. Branch display
// boards and the notification worker subscribe to these.
type Event struct {
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Location       string    `json:"location,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher delivers tracking events to subscribers. Implementations must
// tolerate broker outages; delivery is best effort.
type Publisher interface {
	PublishStatusChange(event Event) error
}

// MQTTPublisher publishes events to postal/tracking/<trackingNumber>.
type MQTTPublisher struct {
	client *mqtt.Client
	qos    byte
}

func NewMQTTPublisher(client *mqtt.Client) *MQTTPublisher {
	return &MQTTPublisher{client: client, qos: 1}
}

func (p *MQTTPublisher) PublishStatusChange(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking event: %w", err)
	}

	topic := fmt.Sprintf("postal/tracking/%s", event.TrackingNumber)
	if err := p.client.Publish(topic, p.qos, false, payload); err != nil {
		return fmt.Errorf("failed to publish tracking event: %w", err)
	}

	logger.Debug("Tracking event published",
		zap.String("topic", topic),
		zap.String("status", event.Status),
	)
	return nil
}
