package mq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const catalogQueue = "catalog_events"

// Event kinds emitted by the admin write paths.
const (
	EventProductCreated = "product.created"
	EventProductDeleted = "product.deleted"
	EventImageUploaded  = "product.image.uploaded"
)

// Event is the JSON payload published for every catalog mutation.
type Event struct {
	Kind      string    `json:"kind"`
	ProductID int64     `json:"product_id"`
	OccuredAt time.Time `json:"occured_at"`
}

// Publisher fans catalog mutations out to the catalog_events queue. It is
// best-effort: failures are logged and never fail the originating request.
type Publisher struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

// NewPublisher builds a publisher. A nil connection yields a no-op publisher.
func NewPublisher(conn *amqp.Connection, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{conn: conn, logger: logger}
}

// Publish sends one event. No-op when MQ is disabled.
func (p *Publisher) Publish(ctx context.Context, kind string, productID int64) {
	if p == nil || p.conn == nil {
		return
	}

	ch, err := p.conn.Channel()
	if err != nil {
		p.logger.Warn("mq channel open failed", zap.Error(err))
		return
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(catalogQueue, true, false, false, false, nil); err != nil {
		p.logger.Warn("mq queue declare failed", zap.Error(err))
		return
	}

	body, _ := json.Marshal(Event{Kind: kind, ProductID: productID, OccuredAt: time.Now()})
	err = ch.PublishWithContext(ctx, "", catalogQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.logger.Warn("mq publish failed", zap.String("kind", kind), zap.Error(err))
	}
}
