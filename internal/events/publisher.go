package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"solemate-service/internal/models"
)

const (
	SubjectProductCreated = "product.created"
	SubjectProductUpdated = "product.updated"
	SubjectProductDeleted = "product.deleted"
)

// ProductEvent is the audit payload published on catalog mutations
type ProductEvent struct {
	EventID     string                 `json:"eventId"`
	EventType   string                 `json:"eventType"`
	ProductID   string                 `json:"productId"`
	ProductName string                 `json:"productName"`
	Price       float64                `json:"price"`
	Category    string                 `json:"category"`
	ChangeType  string                 `json:"changeType"`
	OldValue    map[string]interface{} `json:"oldValue,omitempty"`
	NewValue    map[string]interface{} `json:"newValue,omitempty"`
	ActorID     string                 `json:"actorId,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

// Publisher publishes product audit events over NATS. It is optional: a nil
// *Publisher is safe to call and publishes nothing.
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// NewPublisher connects to NATS at the given URL
func NewPublisher(natsURL string, logger *logrus.Logger) (*Publisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name("solemate-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		logger: logger.WithField("component", "product-events"),
	}, nil
}

// Close closes the NATS connection
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

// PublishProductCreated publishes a product.created event
func (p *Publisher) PublishProductCreated(product models.Product, actorID string) {
	event := p.buildEvent(SubjectProductCreated, product, actorID)
	event.ChangeType = "created"
	p.publish(event)
}

// PublishProductUpdated publishes a product.updated event with old values
func (p *Publisher) PublishProductUpdated(product, old models.Product, actorID string) {
	event := p.buildEvent(SubjectProductUpdated, product, actorID)
	event.ChangeType = "updated"
	event.OldValue = map[string]interface{}{
		"name":  old.Name,
		"price": old.Price,
		"stock": old.Stock,
	}
	event.NewValue = map[string]interface{}{
		"name":  product.Name,
		"price": product.Price,
		"stock": product.Stock,
	}
	p.publish(event)
}

// PublishProductDeleted publishes a product.deleted event
func (p *Publisher) PublishProductDeleted(product models.Product, actorID string) {
	event := p.buildEvent(SubjectProductDeleted, product, actorID)
	event.ChangeType = "deleted"
	p.publish(event)
}

func (p *Publisher) buildEvent(eventType string, product models.Product, actorID string) *ProductEvent {
	return &ProductEvent{
		EventID:     uuid.New().String(),
		EventType:   eventType,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Category:    product.Category,
		ActorID:     actorID,
		Timestamp:   time.Now().UTC(),
	}
}

// publish sends the event asynchronously so catalog mutations never block on
// the broker. Failures are logged, never surfaced.
func (p *Publisher) publish(event *ProductEvent) {
	if p == nil || p.conn == nil {
		return
	}
	go func() {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.WithError(err).Error("Failed to encode product event")
			return
		}
		if err := p.conn.Publish(event.EventType, data); err != nil {
			p.logger.WithFields(logrus.Fields{
				"eventType": event.EventType,
				"productID": event.ProductID,
			}).WithError(err).Error("Failed to publish product event")
			return
		}
		p.logger.WithFields(logrus.Fields{
			"eventType":   event.EventType,
			"productID":   event.ProductID,
			"productName": event.ProductName,
		}).Info("Product event published")
	}()
}
