package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Routing keys on the stock events exchange.
const (
	ShipmentCreated       = "shipment.created"
	ShipmentStatusChanged = "shipment.status_changed"
	OrderCreated          = "order.created"
	OrderStatusChanged    = "order.status_changed"
)

// Publisher emits lifecycle events to a topic exchange. A nil Publisher is
// valid and discards everything, so the service runs without a broker.
// Publishing is fire-and-forget: a broker failure never fails the request
// that triggered it.
type Publisher struct {
	ch       *amqp091.Channel
	exchange string
	logger   *zap.Logger
}

func NewPublisher(ch *amqp091.Channel, exchange string, log *zap.Logger) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch, exchange: exchange, logger: log}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload interface{}) {
	if p == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("marshal event payload", zap.String("routing_key", routingKey), zap.Error(err))
		return
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Body:        body,
		},
	)
	if err != nil {
		p.logger.Error("publish event", zap.String("routing_key", routingKey), zap.Error(err))
	}
}
